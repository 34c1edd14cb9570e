package localstore

// keyPrefix namespaces every record this application owns, so Clear can sweep
// them without touching anything else sharing the driver.
const keyPrefix = "storefront_"

const (
	KeySelectedProduct = keyPrefix + "selected_product"
	KeyBooking         = keyPrefix + "booking_data"
	// KeyPreferences is reserved for user preferences; nothing writes it yet.
	KeyPreferences = keyPrefix + "user_preferences"
)
