package currency

// Currency describes one supported display currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Currencies lists the display currencies the app offers for conversion.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	{Code: "DKK", Symbol: "kr", Name: "Danish Krone"},
	{Code: "TRY", Symbol: "₺", Name: "Turkish Lira"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso"},
	{Code: "ILS", Symbol: "₪", Name: "Israeli New Shekel"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "THB", Symbol: "฿", Name: "Thai Baht"},
	{Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
	{Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah"},
	{Code: "PHP", Symbol: "₱", Name: "Philippine Peso"},
	{Code: "TWD", Symbol: "NT$", Name: "New Taiwan Dollar"},
	{Code: "VND", Symbol: "₫", Name: "Vietnamese Dong"},
	{Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
	{Code: "CZK", Symbol: "Kč", Name: "Czech Koruna"},
}

// Symbol returns the display symbol for a currency code, defaulting to "$"
// for unknown codes so formatting never breaks on odd input.
func Symbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return "$"
}
