package googleplay

// Values below are received from or sent to Google Play. Do not change them.

// MarketBillingServiceAction is the action used to bind to the market billing service.
const MarketBillingServiceAction = "com.android.vending.billing.MarketBillingService.BIND"

// Broadcast actions sent by Google Play and handled by the billing receiver.
const (
	ActionResponseCode = "com.android.vending.billing.RESPONSE_CODE"
	ActionNotify       = "com.android.vending.billing.IN_APP_NOTIFY"
	ActionStateChanged = "com.android.vending.billing.PURCHASE_STATE_CHANGED"
)

// Actions the billing receiver forwards to the billing service.
const (
	ActionGetPurchaseInformation = "com.mosync.java.android.GET_PURCHASE_INFORMATION"
	ActionConfirmNotification    = "com.mosync.java.android.CONFIRM_NOTIFICATION"
	ActionRestoreTransactions    = "com.mosync.java.android.RESTORE_TRANSACTIONS"
)

// Request methods.
const (
	MethodCheckBillingSupported = "CHECK_BILLING_SUPPORTED"
	MethodConfirmNotifications  = "CONFIRM_NOTIFICATIONS"
	MethodGetPurchaseInfo       = "GET_PURCHASE_INFORMATION"
	MethodRequestPurchase       = "REQUEST_PURCHASE"
	MethodRestoreTransactions   = "RESTORE_TRANSACTIONS"
)

// Field names in the request bundle.
const (
	RequestMethod           = "BILLING_REQUEST"
	RequestAPIVersion       = "API_VERSION"
	RequestPackageName      = "PACKAGE_NAME"
	RequestItemID           = "ITEM_ID"
	RequestDeveloperPayload = "DEVELOPER_PAYLOAD"
	RequestNotifyIDs        = "NOTIFY_IDS"
	RequestNonce            = "NONCE"
)

// Field names in the synchronous response bundle.
const (
	ResponseResponseCode   = "RESPONSE_CODE"
	ResponsePurchaseIntent = "PURCHASE_INTENT"
	ResponseRequestID      = "REQUEST_ID"
)

// Extras carried by the broadcast intents.
const (
	ExtraNotificationID = "notification_id"
	ExtraSignedData     = "inapp_signed_data"
	ExtraSignature      = "inapp_signature"
	ExtraRequestID      = "request_id"
	ExtraResponseCode   = "response_code"
)

// Keys of the signed transaction JSON.
const (
	TransactionPurchaseState    = "purchaseState"
	TransactionProductID        = "productId"
	TransactionPackageName      = "packageName"
	TransactionPurchaseTime     = "purchaseTime"
	TransactionOrderID          = "orderId"
	TransactionNotificationID   = "notificationId"
	TransactionDeveloperPayload = "developerPayload"
)

// Sentinels for missing or unreadable values.
const (
	InvalidRequestID    int64 = -1
	InvalidResponseCode int   = -1
	PurchaseStateOnHold int   = -1
)

// Receipt lookup messages.
const (
	ReceiptNotAvailable      = "Receipt not available"
	ReceiptFieldNotAvailable = "Receipt Field not available"
	ReceiptInvalidHandle     = "Invalid handle"
)

// ConstantTable is a named snapshot of every string and sentinel above,
// grouped the way collaborators look them up.
type ConstantTable struct {
	MarketBillingServiceAction string            `json:"market_billing_service_action"`
	BroadcastActions           map[string]string `json:"broadcast_actions"`
	ServiceActions             map[string]string `json:"service_actions"`
	RequestMethods             map[string]string `json:"request_methods"`
	RequestFields              map[string]string `json:"request_fields"`
	ResponseFields             map[string]string `json:"response_fields"`
	IntentExtras               map[string]string `json:"intent_extras"`
	TransactionFields          map[string]string `json:"transaction_fields"`
	ReceiptMessages            map[string]string `json:"receipt_messages"`
	Sentinels                  map[string]int64  `json:"sentinels"`
}

// Constants returns the constant table. Each call builds fresh maps, so
// callers may modify the result.
func Constants() ConstantTable {
	return ConstantTable{
		MarketBillingServiceAction: MarketBillingServiceAction,
		BroadcastActions: map[string]string{
			"response_code": ActionResponseCode,
			"notify":        ActionNotify,
			"state_changed": ActionStateChanged,
		},
		ServiceActions: map[string]string{
			"get_purchase_information": ActionGetPurchaseInformation,
			"confirm_notification":     ActionConfirmNotification,
			"restore_transactions":     ActionRestoreTransactions,
		},
		RequestMethods: map[string]string{
			"check_billing_supported":  MethodCheckBillingSupported,
			"confirm_notifications":    MethodConfirmNotifications,
			"get_purchase_information": MethodGetPurchaseInfo,
			"request_purchase":         MethodRequestPurchase,
			"restore_transactions":     MethodRestoreTransactions,
		},
		RequestFields: map[string]string{
			"method":            RequestMethod,
			"api_version":       RequestAPIVersion,
			"package_name":      RequestPackageName,
			"item_id":           RequestItemID,
			"developer_payload": RequestDeveloperPayload,
			"notify_ids":        RequestNotifyIDs,
			"nonce":             RequestNonce,
		},
		ResponseFields: map[string]string{
			"response_code":   ResponseResponseCode,
			"purchase_intent": ResponsePurchaseIntent,
			"request_id":      ResponseRequestID,
		},
		IntentExtras: map[string]string{
			"notification_id": ExtraNotificationID,
			"signed_data":     ExtraSignedData,
			"signature":       ExtraSignature,
			"request_id":      ExtraRequestID,
			"response_code":   ExtraResponseCode,
		},
		TransactionFields: map[string]string{
			"purchase_state":    TransactionPurchaseState,
			"product_id":        TransactionProductID,
			"package_name":      TransactionPackageName,
			"purchase_time":     TransactionPurchaseTime,
			"order_id":          TransactionOrderID,
			"notification_id":   TransactionNotificationID,
			"developer_payload": TransactionDeveloperPayload,
		},
		ReceiptMessages: map[string]string{
			"not_available":       ReceiptNotAvailable,
			"field_not_available": ReceiptFieldNotAvailable,
			"invalid_handle":      ReceiptInvalidHandle,
		},
		Sentinels: map[string]int64{
			"invalid_request_id":     InvalidRequestID,
			"invalid_response_code":  int64(InvalidResponseCode),
			"purchase_state_on_hold": int64(PurchaseStateOnHold),
		},
	}
}
