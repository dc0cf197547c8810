package apicode

// Common holds the codes shared by every API surface.
//
// 10xx: general server or network issues. 11xx-2xxx: request issues.
// 20xx: processing issues.
var Common = Table{
	-1000: "UNKNOWN",
	-1001: "DISCONNECTED",
	-1002: "UNAUTHORIZED",
	-1003: "TOO_MANY_REQUESTS",
	-1004: "DUPLICATE_IP",
	-1005: "NO_SUCH_IP",
	-1006: "UNEXPECTED_RESP",
	-1007: "TIMEOUT",
	-1010: "ERROR_MSG_RECEIVED",
	-1011: "NON_WHITE_LIST",
	-1013: "INVALID_MESSAGE",
	-1014: "UNKNOWN_ORDER_COMPOSITION",
	-1015: "TOO_MANY_ORDERS",
	-1016: "SERVICE_SHUTTING_DOWN",
	-1020: "UNSUPPORTED_OPERATION",
	-1021: "INVALID_TIMESTAMP",
	-1022: "INVALID_SIGNATURE",
	-1023: "START_TIME_GREATER_THAN_END_TIME",
	-1099: "NOT_FOUND",
	-1100: "ILLEGAL_CHARS",
	-1101: "TOO_MANY_PARAMETERS",
	-1102: "MANDATORY_PARAM_EMPTY_OR_MALFORMED",
	-1103: "UNKNOWN_PARAM",
	-1104: "UNREAD_PARAMETERS",
	-1105: "PARAM_EMPTY",
	-1106: "PARAM_NOT_REQUIRED",
	-1108: "BAD_ASSET",
	-1109: "BAD_ACCOUNT",
	-1110: "BAD_INSTRUMENT_TYPE",
	-1111: "BAD_PRECISION",
	-1112: "NO_DEPTH",
	-1113: "WITHDRAW_NOT_NEGATIVE",
	-1114: "TIF_NOT_REQUIRED",
	-1115: "INVALID_TIF",
	-1116: "INVALID_ORDER_TYPE",
	-1117: "INVALID_SIDE",
	-1118: "EMPTY_NEW_CL_ORD_ID",
	-1119: "EMPTY_ORG_CL_ORD_ID",
	-1120: "BAD_INTERVAL",
	-1121: "BAD_SYMBOL",
	-1125: "INVALID_LISTEN_KEY",
	-1127: "MORE_THAN_XX_HOURS",
	-1128: "OPTIONAL_PARAMS_BAD_COMBO",
	-1130: "INVALID_PARAMETER",
	-1131: "BAD_RECV_WINDOW",
	-2008: "BAD_API_ID",
	-2010: "NEW_ORDER_REJECTED",
	-2011: "CANCEL_REJECTED",
	-2013: "NO_SUCH_ORDER",
	-2014: "BAD_API_KEY_FMT",
	-2015: "REJECTED_MBX_KEY",
	-2016: "NO_TRADING_WINDOW",
	-2018: "BALANCE_NOT_SUFFICIENT",
	-2019: "MARGIN_NOT_SUFFICIENT",
	-2020: "UNABLE_TO_FILL",
	-2021: "ORDER_WOULD_IMMEDIATELY_TRIGGER",
	-2022: "REDUCE_ONLY_REJECT",
	-2023: "USER_IN_LIQUIDATION",
	-2024: "POSITION_NOT_SUFFICIENT",
	-2025: "MAX_OPEN_ORDER_EXCEEDED",
	-2026: "REDUCE_ONLY_ORDER_TYPE_NOT_SUPPORTED",
	-2027: "MAX_LEVERAGE_RATIO",
	-2028: "MIN_LEVERAGE_RATIO",
}

// Spot names the codes specific to the spot REST API.
var Spot = Table{
	-3021: "MARGIN_PAIR_ADMIN_BAN_TRADE",
	-3022: "MARGIN_ACCOUNT_BAN_TRADE",
	-3023: "MARGIN_WARNING_MARGIN_LEVEL",
	-3024: "MARGIN_FEW_LIABILITY_LEFT",
	-3025: "MARGIN_INVALID_EFFECTIVE_TIME",
	-3026: "MARGIN_VALIDATION_FAILED",
	-3027: "MARGIN_NOT_VALID_MARGIN_ASSET",
	-3028: "MARGIN_NOT_VALID_MARGIN_PAIR",
	-3029: "MARGIN_TRANSFER_FAILED",
	-3036: "MARGIN_ACCOUNT_BAN_REPAY",
	-3037: "MARGIN_PNL_CLEARING",
	-3038: "MARGIN_LISTEN_KEY_NOT_FOUND",
	-3042: "MARGIN_PRICE_INDEX_NOT_FOUND",
	-3999: "NOT_WHITELIST_USER",
	-4001: "CAPITAL_INVALID",
	-4002: "CAPITAL_IG",
	-4003: "CAPITAL_IEV",
	-4004: "CAPITAL_UA",
	-4005: "CAPITAL_TOO_MANY_REQUEST",
	-4006: "CAPITAL_ONLY_SUPPORT_PRIMARY_ACCOUNT",
	-4007: "CAPITAL_ADDRESS_VERIFICATION_NOT_PASS",
	-4008: "CAPITAL_ADDRESS_TAG_VERIFICATION_NOT_PASS",
	-5011: "ASSET_NOT_SUPPORTED",
	-6001: "DAILY_PRODUCT_NOT_EXIST",
	-6003: "DAILY_PRODUCT_NOT_ACCESSIBLE",
	-6004: "DAILY_PRODUCT_NOT_PURCHASABLE",
	-6005: "DAILY_LOWER_THAN_MIN_PURCHASE_LIMIT",
	-6006: "DAILY_REDEEM_AMOUNT_ERROR",
	-6007: "DAILY_REDEEM_TIME_ERROR",
	-6008: "DAILY_PRODUCT_NOT_REDEEMABLE",
	-6009: "REQUEST_FREQUENCY_TOO_HIGH",
	-6011: "EXCEEDED_USER_PURCHASE_LIMIT",
	-6012: "BALANCE_NOT_ENOUGH",
	-6013: "PURCHASING_FAILED",
	-6014: "UPDATE_FAILED",
	-6015: "EMPTY_REQUEST_BODY",
	-6016: "PARAMS_ERR",
	-6017: "NOT_IN_WHITELIST",
	-6018: "ASSET_NOT_ENOUGH",
	-6019: "PENDING",
}

// Futures names the codes specific to the futures REST API.
var Futures = Table{
	-4000: "INVALID_ORDER_STATUS",
	-4001: "PRICE_LESS_THAN_ZERO",
	-4002: "PRICE_GREATER_THAN_MAX_PRICE",
	-4003: "QTY_LESS_THAN_ZERO",
	-4004: "QTY_LESS_THAN_MIN_QTY",
	-4005: "QTY_LESS_THAN_MAX_QTY",
	-4006: "STOP_PRICE_LESS_THAN_ZERO",
	-4007: "STOP_PRICE_GREATER_THAN_MAX_PRICE",
	-4008: "TICK_SIZE_LESS_THAN_ZERO",
	-4009: "MAX_PRICE_LESS_THAN_MIN_PRICE",
	-4010: "MAX_QTY_LESS_THAN_MIN_QTY",
	-4011: "STEP_SIZE_LESS_THAN_ZERO",
	-4012: "MAX_NUM_ORDERS_LESS_THAN_ZERO",
	-4013: "PRICE_LESS_THAN_MIN_PRICE",
	-4014: "PRICE_NOT_INCREASED_BY_TICK_SIZE",
	-4015: "INVALID_CL_ORD_ID_LEN",
	-4016: "PRICE_HIGHTER_THAN_MULTIPLIER_UP",
	-4017: "MULTIPLIER_UP_LESS_THAN_ZERO",
	-4018: "MULTIPLIER_DOWN_LESS_THAN_ZERO",
	-4019: "COMPOSITE_SCALE_OVERFLOW",
	-4020: "TARGET_STRATEGY_INVALID",
	-4021: "INVALID_DEPTH_LIMIT",
	-4022: "WRONG_MARKET_STATUS",
	-4023: "QTY_NOT_INCREASED_BY_STEP_SIZE",
	-4024: "PRICE_LOWER_THAN_MULTIPLIER_DOWN",
	-4025: "MULTIPLIER_DECIMAL_LESS_THAN_ZERO",
	-4026: "COMMISSION_INVALID",
	-4027: "INVALID_ACCOUNT_TYPE",
	-4028: "INVALID_LEVERAGE",
	-4029: "INVALID_TICK_SIZE_PRECISION",
	-4030: "INVALID_STEP_SIZE_PRECISION",
	-4031: "INVALID_WORKING_TYPE",
	-4032: "EXCEED_MAX_CANCEL_ORDER_SIZE",
	-4033: "INSURANCE_ACCOUNT_NOT_FOUND",
	-4044: "INVALID_BALANCE_TYPE",
	-4045: "MAX_STOP_ORDER_EXCEEDED",
	-4046: "NO_NEED_TO_CHANGE_MARGIN_TYPE",
	-4047: "THERE_EXISTS_OPEN_ORDERS",
	-4048: "THERE_EXISTS_QUANTITY",
	-4049: "ADD_ISOLATED_MARGIN_REJECT",
	-4050: "CROSS_BALANCE_INSUFFICIENT",
	-4051: "ISOLATED_BALANCE_INSUFFICIENT",
	-4052: "NO_NEED_TO_CHANGE_AUTO_ADD_MARGIN",
	-4053: "AUTO_ADD_CROSSED_MARGIN_REJECT",
	-4054: "ADD_ISOLATED_MARGIN_NO_POSITION_REJECT",
	-4055: "AMOUNT_MUST_BE_POSITIVE",
	-4056: "INVALID_API_KEY_TYPE",
	-4057: "INVALID_RSA_PUBLIC_KEY",
	-4058: "MAX_PRICE_TOO_LARGE",
	-4059: "NO_NEED_TO_CHANGE_POSITION_SIDE",
	-4060: "INVALID_POSITION_SIDE",
	-4061: "POSITION_SIDE_NOT_MATCH",
	-4062: "REDUCE_ONLY_CONFLICT",
	-4063: "INVALID_OPTIONS_REQUEST_TYPE",
	-4064: "INVALID_OPTIONS_TIME_FRAME",
	-4065: "INVALID_OPTIONS_AMOUNT",
	-4066: "INVALID_OPTIONS_EVENT_TYPE",
	-4067: "POSITION_SIDE_CHANGE_EXISTS_OPEN_ORDERS",
	-4068: "POSITION_SIDE_CHANGE_EXISTS_QUANTITY",
	-4069: "INVALID_OPTIONS_PREMIUM_FEE",
	-4070: "INVALID_CL_OPTIONS_ID_LEN",
	-4071: "INVALID_OPTIONS_DIRECTION",
	-4072: "OPTIONS_PREMIUM_NOT_UPDATE",
	-4073: "OPTIONS_PREMIUM_INPUT_LESS_THAN_ZERO",
	-4074: "OPTIONS_AMOUNT_BIGGER_THAN_UPPER",
	-4075: "OPTIONS_PREMIUM_OUTPUT_ZERO",
	-4076: "OPTIONS_PREMIUM_TOO_DIFF",
	-4077: "OPTIONS_PREMIUM_REACH_LIMIT",
	-4078: "OPTIONS_COMMON_ERROR",
	-4079: "INVALID_OPTIONS_ID",
	-4080: "OPTIONS_USER_NOT_FOUND",
	-4081: "OPTIONS_NOT_FOUND",
	-4082: "INVALID_BATCH_PLACE_ORDER_SIZE",
	-4083: "PLACE_BATCH_ORDERS_FAIL",
	-4084: "UPCOMING_METHOD",
	-4085: "INVALID_NOTIONAL_LIMIT_COEF",
	-4086: "INVALID_PRICE_SPREAD_THRESHOLD",
}

// Stream names the codes returned on the websocket control channel.
var Stream = Table{
	0: "UNKNOWN_PROPERTY",
	1: "INVALID_VALUE_TYPE",
	2: "INVALID_REQUEST",
	3: "INVALID_JSON",
}
