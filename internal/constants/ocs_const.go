package constants

// OCS status codes carried in the envelope's statuscode field.
const (
	OCSStatusOK            = 100
	OCSStatusInvalidInput  = 101
	OCSStatusFailed        = 102
	OCSStatusServerError   = 996
	OCSStatusUnauthorised  = 997
	OCSStatusNotFound      = 998
	OCSStatusUnknownError  = 999
	OCSStatusMessageOK     = "OK"
	OCSStatusMessageFailed = "failure"
)

// OCS envelope field names. Caller data is merged into the defaults by these keys.
const (
	OCSKeyStatus       = "status"
	OCSKeyStatusCode   = "statuscode"
	OCSKeyMessage      = "message"
	OCSKeyData         = "data"
	OCSKeyTag          = "tag"
	OCSKeyTagAttribute = "tagattribute"
	OCSKeyDimension    = "dimension"
	OCSKeyItemsCount   = "itemscount"
	OCSKeyItemsPerPage = "itemsperpage"
)

// OCS serialization formats.
const (
	OCSFormatJSON    = "json"
	OCSFormatXML     = "xml"
	OCSDefaultFormat = OCSFormatXML

	// OCSDimensionDynamic lets the tag attribute carry map keys of list items.
	OCSDimensionDynamic = "dynamic"
)
