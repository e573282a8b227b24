package model

// ConfigType is the discriminator stored in the config_type column. The set of
// constants is closed at compile time but the column is open: adding a type
// needs no schema change.
type ConfigType string

const (
	ConfigTypePaymentMethod ConfigType = "PAYMENT_METHOD"
	ConfigTypeBank          ConfigType = "BANK"
)

// IdentityStrategy decides how a config type derives the primary key of its rows.
type IdentityStrategy string

const (
	// StrategySurrogate stores a generated id distinct from the natural key.
	StrategySurrogate IdentityStrategy = "surrogate"
	// StrategyNaturalKey stores the natural key itself as the id.
	StrategyNaturalKey IdentityStrategy = "natural_key"
)

// Known payment method codes. They document common values; the registry does
// not reject others.
const (
	PaymentMethodPromptPay    = "PROMPTPAY"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
	PaymentMethodCard         = "CARD"
	PaymentMethodEWallet      = "EWALLET"
)
