package s2

// Currency is an ISO 4217 currency code.
type Currency string

// ISO 4217 currency codes.
const (
	CurrencyAED Currency = "AED"
	CurrencyAFN Currency = "AFN"
	CurrencyALL Currency = "ALL"
	CurrencyAMD Currency = "AMD"
	CurrencyANG Currency = "ANG"
	CurrencyAOA Currency = "AOA"
	CurrencyARS Currency = "ARS"
	CurrencyAUD Currency = "AUD"
	CurrencyAWG Currency = "AWG"
	CurrencyAZN Currency = "AZN"
	CurrencyBAM Currency = "BAM"
	CurrencyBBD Currency = "BBD"
	CurrencyBDT Currency = "BDT"
	CurrencyBGN Currency = "BGN"
	CurrencyBHD Currency = "BHD"
	CurrencyBIF Currency = "BIF"
	CurrencyBMD Currency = "BMD"
	CurrencyBND Currency = "BND"
	CurrencyBOB Currency = "BOB"
	CurrencyBRL Currency = "BRL"
	CurrencyBSD Currency = "BSD"
	CurrencyBTN Currency = "BTN"
	CurrencyBWP Currency = "BWP"
	CurrencyBYN Currency = "BYN"
	CurrencyBZD Currency = "BZD"
	CurrencyCAD Currency = "CAD"
	CurrencyCDF Currency = "CDF"
	CurrencyCHF Currency = "CHF"
	CurrencyCLP Currency = "CLP"
	CurrencyCNY Currency = "CNY"
	CurrencyCOP Currency = "COP"
	CurrencyCRC Currency = "CRC"
	CurrencyCUP Currency = "CUP"
	CurrencyCVE Currency = "CVE"
	CurrencyCZK Currency = "CZK"
	CurrencyDJF Currency = "DJF"
	CurrencyDKK Currency = "DKK"
	CurrencyDOP Currency = "DOP"
	CurrencyDZD Currency = "DZD"
	CurrencyEGP Currency = "EGP"
	CurrencyERN Currency = "ERN"
	CurrencyETB Currency = "ETB"
	CurrencyEUR Currency = "EUR"
	CurrencyFJD Currency = "FJD"
	CurrencyFKP Currency = "FKP"
	CurrencyFOK Currency = "FOK"
	CurrencyGBP Currency = "GBP"
	CurrencyGEL Currency = "GEL"
	CurrencyGGP Currency = "GGP"
	CurrencyGHS Currency = "GHS"
	CurrencyGIP Currency = "GIP"
	CurrencyGMD Currency = "GMD"
	CurrencyGNF Currency = "GNF"
	CurrencyGTQ Currency = "GTQ"
	CurrencyGYD Currency = "GYD"
	CurrencyHKD Currency = "HKD"
	CurrencyHNL Currency = "HNL"
	CurrencyHRK Currency = "HRK"
	CurrencyHTG Currency = "HTG"
	CurrencyHUF Currency = "HUF"
	CurrencyIDR Currency = "IDR"
	CurrencyILS Currency = "ILS"
	CurrencyIMP Currency = "IMP"
	CurrencyINR Currency = "INR"
	CurrencyIQD Currency = "IQD"
	CurrencyIRR Currency = "IRR"
	CurrencyISK Currency = "ISK"
	CurrencyJEP Currency = "JEP"
	CurrencyJMD Currency = "JMD"
	CurrencyJOD Currency = "JOD"
	CurrencyJPY Currency = "JPY"
	CurrencyKES Currency = "KES"
	CurrencyKGS Currency = "KGS"
	CurrencyKHR Currency = "KHR"
	CurrencyKID Currency = "KID"
	CurrencyKMF Currency = "KMF"
	CurrencyKRW Currency = "KRW"
	CurrencyKWD Currency = "KWD"
	CurrencyKYD Currency = "KYD"
	CurrencyKZT Currency = "KZT"
	CurrencyLAK Currency = "LAK"
	CurrencyLBP Currency = "LBP"
	CurrencyLKR Currency = "LKR"
	CurrencyLRD Currency = "LRD"
	CurrencyLSL Currency = "LSL"
	CurrencyLYD Currency = "LYD"
	CurrencyMAD Currency = "MAD"
	CurrencyMDL Currency = "MDL"
	CurrencyMGA Currency = "MGA"
	CurrencyMKD Currency = "MKD"
	CurrencyMMK Currency = "MMK"
	CurrencyMNT Currency = "MNT"
	CurrencyMOP Currency = "MOP"
	CurrencyMRU Currency = "MRU"
	CurrencyMUR Currency = "MUR"
	CurrencyMVR Currency = "MVR"
	CurrencyMWK Currency = "MWK"
	CurrencyMXN Currency = "MXN"
	CurrencyMYR Currency = "MYR"
	CurrencyMZN Currency = "MZN"
	CurrencyNAD Currency = "NAD"
	CurrencyNGN Currency = "NGN"
	CurrencyNIO Currency = "NIO"
	CurrencyNOK Currency = "NOK"
	CurrencyNPR Currency = "NPR"
	CurrencyNZD Currency = "NZD"
	CurrencyOMR Currency = "OMR"
	CurrencyPAB Currency = "PAB"
	CurrencyPEN Currency = "PEN"
	CurrencyPGK Currency = "PGK"
	CurrencyPHP Currency = "PHP"
	CurrencyPKR Currency = "PKR"
	CurrencyPLN Currency = "PLN"
	CurrencyPYG Currency = "PYG"
	CurrencyQAR Currency = "QAR"
	CurrencyRON Currency = "RON"
	CurrencyRSD Currency = "RSD"
	CurrencyRUB Currency = "RUB"
	CurrencyRWF Currency = "RWF"
	CurrencySAR Currency = "SAR"
	CurrencySBD Currency = "SBD"
	CurrencySCR Currency = "SCR"
	CurrencySDG Currency = "SDG"
	CurrencySEK Currency = "SEK"
	CurrencySGD Currency = "SGD"
	CurrencySHP Currency = "SHP"
	CurrencySLE Currency = "SLE"
	CurrencySLL Currency = "SLL"
	CurrencySOS Currency = "SOS"
	CurrencySRD Currency = "SRD"
	CurrencySSP Currency = "SSP"
	CurrencySTN Currency = "STN"
	CurrencySYP Currency = "SYP"
	CurrencySZL Currency = "SZL"
	CurrencyTHB Currency = "THB"
	CurrencyTJS Currency = "TJS"
	CurrencyTMT Currency = "TMT"
	CurrencyTND Currency = "TND"
	CurrencyTOP Currency = "TOP"
	CurrencyTRY Currency = "TRY"
	CurrencyTTD Currency = "TTD"
	CurrencyTVD Currency = "TVD"
	CurrencyTWD Currency = "TWD"
	CurrencyTZS Currency = "TZS"
	CurrencyUAH Currency = "UAH"
	CurrencyUGX Currency = "UGX"
	CurrencyUSD Currency = "USD"
	CurrencyUYU Currency = "UYU"
	CurrencyUZS Currency = "UZS"
	CurrencyVES Currency = "VES"
	CurrencyVND Currency = "VND"
	CurrencyVUV Currency = "VUV"
	CurrencyWST Currency = "WST"
	CurrencyXAF Currency = "XAF"
	CurrencyXCD Currency = "XCD"
	CurrencyXOF Currency = "XOF"
	CurrencyXPF Currency = "XPF"
	CurrencyYER Currency = "YER"
	CurrencyZAR Currency = "ZAR"
	CurrencyZMW Currency = "ZMW"
	CurrencyZWL Currency = "ZWL"
)

var knownCurrencies = map[Currency]struct{}{
	CurrencyAED: {}, CurrencyAFN: {}, CurrencyALL: {}, CurrencyAMD: {},
	CurrencyANG: {}, CurrencyAOA: {}, CurrencyARS: {}, CurrencyAUD: {},
	CurrencyAWG: {}, CurrencyAZN: {}, CurrencyBAM: {}, CurrencyBBD: {},
	CurrencyBDT: {}, CurrencyBGN: {}, CurrencyBHD: {}, CurrencyBIF: {},
	CurrencyBMD: {}, CurrencyBND: {}, CurrencyBOB: {}, CurrencyBRL: {},
	CurrencyBSD: {}, CurrencyBTN: {}, CurrencyBWP: {}, CurrencyBYN: {},
	CurrencyBZD: {}, CurrencyCAD: {}, CurrencyCDF: {}, CurrencyCHF: {},
	CurrencyCLP: {}, CurrencyCNY: {}, CurrencyCOP: {}, CurrencyCRC: {},
	CurrencyCUP: {}, CurrencyCVE: {}, CurrencyCZK: {}, CurrencyDJF: {},
	CurrencyDKK: {}, CurrencyDOP: {}, CurrencyDZD: {}, CurrencyEGP: {},
	CurrencyERN: {}, CurrencyETB: {}, CurrencyEUR: {}, CurrencyFJD: {},
	CurrencyFKP: {}, CurrencyFOK: {}, CurrencyGBP: {}, CurrencyGEL: {},
	CurrencyGGP: {}, CurrencyGHS: {}, CurrencyGIP: {}, CurrencyGMD: {},
	CurrencyGNF: {}, CurrencyGTQ: {}, CurrencyGYD: {}, CurrencyHKD: {},
	CurrencyHNL: {}, CurrencyHRK: {}, CurrencyHTG: {}, CurrencyHUF: {},
	CurrencyIDR: {}, CurrencyILS: {}, CurrencyIMP: {}, CurrencyINR: {},
	CurrencyIQD: {}, CurrencyIRR: {}, CurrencyISK: {}, CurrencyJEP: {},
	CurrencyJMD: {}, CurrencyJOD: {}, CurrencyJPY: {}, CurrencyKES: {},
	CurrencyKGS: {}, CurrencyKHR: {}, CurrencyKID: {}, CurrencyKMF: {},
	CurrencyKRW: {}, CurrencyKWD: {}, CurrencyKYD: {}, CurrencyKZT: {},
	CurrencyLAK: {}, CurrencyLBP: {}, CurrencyLKR: {}, CurrencyLRD: {},
	CurrencyLSL: {}, CurrencyLYD: {}, CurrencyMAD: {}, CurrencyMDL: {},
	CurrencyMGA: {}, CurrencyMKD: {}, CurrencyMMK: {}, CurrencyMNT: {},
	CurrencyMOP: {}, CurrencyMRU: {}, CurrencyMUR: {}, CurrencyMVR: {},
	CurrencyMWK: {}, CurrencyMXN: {}, CurrencyMYR: {}, CurrencyMZN: {},
	CurrencyNAD: {}, CurrencyNGN: {}, CurrencyNIO: {}, CurrencyNOK: {},
	CurrencyNPR: {}, CurrencyNZD: {}, CurrencyOMR: {}, CurrencyPAB: {},
	CurrencyPEN: {}, CurrencyPGK: {}, CurrencyPHP: {}, CurrencyPKR: {},
	CurrencyPLN: {}, CurrencyPYG: {}, CurrencyQAR: {}, CurrencyRON: {},
	CurrencyRSD: {}, CurrencyRUB: {}, CurrencyRWF: {}, CurrencySAR: {},
	CurrencySBD: {}, CurrencySCR: {}, CurrencySDG: {}, CurrencySEK: {},
	CurrencySGD: {}, CurrencySHP: {}, CurrencySLE: {}, CurrencySLL: {},
	CurrencySOS: {}, CurrencySRD: {}, CurrencySSP: {}, CurrencySTN: {},
	CurrencySYP: {}, CurrencySZL: {}, CurrencyTHB: {}, CurrencyTJS: {},
	CurrencyTMT: {}, CurrencyTND: {}, CurrencyTOP: {}, CurrencyTRY: {},
	CurrencyTTD: {}, CurrencyTVD: {}, CurrencyTWD: {}, CurrencyTZS: {},
	CurrencyUAH: {}, CurrencyUGX: {}, CurrencyUSD: {}, CurrencyUYU: {},
	CurrencyUZS: {}, CurrencyVES: {}, CurrencyVND: {}, CurrencyVUV: {},
	CurrencyWST: {}, CurrencyXAF: {}, CurrencyXCD: {}, CurrencyXOF: {},
	CurrencyXPF: {}, CurrencyYER: {}, CurrencyZAR: {}, CurrencyZMW: {},
	CurrencyZWL: {},
}

// IsValid returns true for a known ISO 4217 code.
func (c Currency) IsValid() bool {
	_, ok := knownCurrencies[c]
	return ok
}
