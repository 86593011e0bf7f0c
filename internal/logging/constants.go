package logging

// Standardized field names for structured logging.
// Using the same keys everywhere keeps log output easy to filter.
const (
	FieldFile          = "file_path"
	FieldTransactionID = "transaction_id"
	FieldGoalID        = "goal_id"
	FieldCategory      = "category"
	FieldKeyword       = "keyword"
	FieldAmount        = "amount"
	FieldDays          = "days"
	FieldFormat        = "format"
	FieldCount         = "count"
	FieldOperation     = "operation"
	FieldError         = "error"
)
