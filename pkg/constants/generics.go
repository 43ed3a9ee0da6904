package constants

// RFC 3339 with fixed millisecond precision, the form web clients produce with
// Date.toISOString. Used for record timestamps in API responses.
const RFC3339MilliDateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

const DefaultServiceName = "orbtrix-website"
