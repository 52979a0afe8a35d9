package registry

import "mariosat/mifir-mapper/internal/models"

// builtinFields is the auth.016.001.01 field catalog in schema emission
// order. The order of this slice is the order elements appear inside each
// Tx/New block, regardless of mapping iteration order.
var builtinFields = []models.FieldDefinition{
	{
		Name:        "transaction_id",
		XMLPath:     []string{"TxId"},
		Type:        models.TypeString,
		Category:    models.CategoryRequired,
		Case:        models.CaseUpper,
		AlnumOnly:   true,
		MaxLen:      52,
		Synonyms:    []string{"trade_id", "tx_id", "transaction", "fill_id", "order_id"},
		Description: "Unique transaction identifier",
		Example:     "5068869479P90006167594",
	},
	{
		Name:        "executing_party_lei",
		XMLPath:     []string{"ExctgPty"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Case:        models.CaseUpper,
		Synonyms:    []string{"executing_party", "firm_lei"},
		Description: "Executing party LEI; defaults to the reporting party",
		Example:     "2138001ME4Z9Z8DZNS52",
	},
	{
		Name:        "investment_party_indicator",
		XMLPath:     []string{"InvstmtPtyInd"},
		Type:        models.TypeBoolean,
		Category:    models.CategoryOptional,
		Description: "Whether the executing party is an investment firm",
		Example:     "true",
	},
	{
		Name:        "reporting_party_lei",
		XMLPath:     []string{"SubmitgPty"},
		Type:        models.TypeString,
		Category:    models.CategoryRequired,
		Case:        models.CaseUpper,
		Synonyms:    []string{"reporting_party", "submitting_party", "lei"},
		Description: "Reporting (submitting) party LEI",
		Example:     "2138001ME4Z9Z8DZNS52",
	},

	// Buyer block
	{
		Name:        "buyer_lei",
		XMLPath:     []string{"Buyr", "AcctOwnr", "Id", "LEI"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Case:        models.CaseUpper,
		Synonyms:    []string{"buyer", "maker_user", "maker_id", "client_id"},
		Description: "Buyer LEI (if legal entity)",
		Example:     "506700N3EE6U50944T62",
	},
	{
		Name:        "buyer_first_name",
		XMLPath:     []string{"Buyr", "AcctOwnr", "Id", "Prsn", "FrstNm"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Condition:   &models.Condition{Field: "buyer_lei", WhenEmpty: true},
		Description: "Buyer first name (if natural person)",
	},
	{
		Name:        "buyer_last_name",
		XMLPath:     []string{"Buyr", "AcctOwnr", "Id", "Prsn", "Nm"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Condition:   &models.Condition{Field: "buyer_lei", WhenEmpty: true},
		Description: "Buyer last name (if natural person)",
	},
	{
		Name:        "buyer_birth_date",
		XMLPath:     []string{"Buyr", "AcctOwnr", "Id", "Prsn", "BirthDt"},
		Type:        models.TypeDate,
		Category:    models.CategoryConditional,
		Description: "Buyer birth date (if natural person)",
		Example:     "1994-08-31",
	},
	{
		Name:        "buyer_national_id",
		XMLPath:     []string{"Buyr", "AcctOwnr", "Id", "Prsn", "Othr", "Id"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Condition:   &models.Condition{Field: "buyer_lei", WhenEmpty: true},
		Description: "Buyer national ID (if natural person)",
		Example:     "BE592344987958",
	},
	{
		Name:        "buyer_id_scheme",
		XMLPath:     []string{"Buyr", "AcctOwnr", "Id", "Prsn", "Othr", "SchmeNm", "Cd"},
		Type:        models.TypeEnum,
		Category:    models.CategoryConditional,
		EnumValues:  []string{"NIDN", "CCPT", "NOID"},
		Case:        models.CaseUpper,
		Description: "Identification scheme for the buyer national ID",
	},
	{
		Name:        "buyer_country",
		XMLPath:     []string{"Buyr", "AcctOwnr", "CtryOfBrnch"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Case:        models.CaseUpper,
		MaxLen:      2,
		Description: "Buyer country of branch (ISO 3166-1 alpha-2)",
		Example:     "CY",
	},
	{
		Name:        "investment_decision_person",
		XMLPath:     []string{"Buyr", "DcsnMakr", "Prsn", "Id"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Description: "National ID of the person who made the investment decision",
	},
	{
		Name:        "investment_decision_algo",
		XMLPath:     []string{"Buyr", "DcsnMakr", "Algo", "Id"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Description: "Algorithm ID if the investment decision was algorithmic",
		Example:     "ALGO_001",
	},

	// Seller block
	{
		Name:        "seller_lei",
		XMLPath:     []string{"Sellr", "AcctOwnr", "Id", "LEI"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Case:        models.CaseUpper,
		Synonyms:    []string{"seller", "taker_user", "taker_id", "counterparty"},
		Description: "Seller LEI (if legal entity)",
		Example:     "506700N3EE6U50944T62",
	},
	{
		Name:        "seller_first_name",
		XMLPath:     []string{"Sellr", "AcctOwnr", "Id", "Prsn", "FrstNm"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Condition:   &models.Condition{Field: "seller_lei", WhenEmpty: true},
		Description: "Seller first name (if natural person)",
	},
	{
		Name:        "seller_last_name",
		XMLPath:     []string{"Sellr", "AcctOwnr", "Id", "Prsn", "Nm"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Condition:   &models.Condition{Field: "seller_lei", WhenEmpty: true},
		Description: "Seller last name (if natural person)",
	},
	{
		Name:        "seller_birth_date",
		XMLPath:     []string{"Sellr", "AcctOwnr", "Id", "Prsn", "BirthDt"},
		Type:        models.TypeDate,
		Category:    models.CategoryConditional,
		Description: "Seller birth date (if natural person)",
		Example:     "1978-10-31",
	},
	{
		Name:        "seller_national_id",
		XMLPath:     []string{"Sellr", "AcctOwnr", "Id", "Prsn", "Othr", "Id"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Condition:   &models.Condition{Field: "seller_lei", WhenEmpty: true},
		Description: "Seller national ID (if natural person)",
	},
	{
		Name:        "seller_id_scheme",
		XMLPath:     []string{"Sellr", "AcctOwnr", "Id", "Prsn", "Othr", "SchmeNm", "Cd"},
		Type:        models.TypeEnum,
		Category:    models.CategoryConditional,
		EnumValues:  []string{"NIDN", "CCPT", "NOID"},
		Case:        models.CaseUpper,
		Description: "Identification scheme for the seller national ID",
	},
	{
		Name:        "seller_country",
		XMLPath:     []string{"Sellr", "AcctOwnr", "CtryOfBrnch"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Case:        models.CaseUpper,
		MaxLen:      2,
		Description: "Seller country of branch (ISO 3166-1 alpha-2)",
	},
	{
		Name:        "execution_decision_person",
		XMLPath:     []string{"Sellr", "ExctnWthnFirm", "Prsn", "Id"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Description: "National ID of the person who made the execution decision",
	},
	{
		Name:        "execution_decision_algo",
		XMLPath:     []string{"Sellr", "ExctnWthnFirm", "Algo", "Id"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Description: "Algorithm ID if the execution decision was algorithmic",
		Example:     "ALGO_002",
	},

	{
		Name:        "transmission_indicator",
		XMLPath:     []string{"OrdrTrnsmssn", "TrnsmssnInd"},
		Type:        models.TypeBoolean,
		Category:    models.CategoryOptional,
		EmitEmpty:   true,
		Description: "Whether the order was transmitted to another firm",
		Example:     "false",
	},

	// Trading details block
	{
		Name:        "trade_datetime",
		XMLPath:     []string{"Tx", "TradDt"},
		Type:        models.TypeDateTime,
		Category:    models.CategoryRequired,
		Synonyms:    []string{"timestamp", "time", "datetime", "date", "execution", "trade_time"},
		Description: "Trade date and time (UTC with milliseconds)",
		Example:     "2025-08-19T22:23:00.300Z",
	},
	{
		Name:        "settlement_date",
		XMLPath:     []string{"Tx", "SttlmDt"},
		Type:        models.TypeDate,
		Category:    models.CategoryConditional,
		Condition:   &models.Condition{Field: "delivery_type", Equals: []string{"PHYS"}},
		Description: "Settlement date, required for physically delivered products",
		Example:     "2025-08-21",
	},
	{
		Name:        "trading_capacity",
		XMLPath:     []string{"Tx", "TradgCpcty"},
		Type:        models.TypeEnum,
		Category:    models.CategoryOptional,
		EnumValues:  []string{"DEAL", "MTCH", "AOTC"},
		Case:        models.CaseUpper,
		Synonyms:    []string{"capacity", "role"},
		Description: "Trading capacity",
		Example:     "AOTC",
	},
	{
		Name:        "quantity",
		XMLPath:     []string{"Tx", "Qty", "Unit"},
		Type:        models.TypeDecimal,
		Category:    models.CategoryRequired,
		Synonyms:    []string{"qty", "size", "volume", "amount"},
		Description: "Transaction quantity in contract units",
		Example:     "0.01",
	},
	{
		Name:        "price_amount",
		XMLPath:     []string{"Tx", "Pric", "Pric", "MntryVal", "Amt"},
		Type:        models.TypeDecimal,
		Category:    models.CategoryRequired,
		Synonyms:    []string{"price", "rate", "px"},
		Description: "Transaction price in contract currency",
		Example:     "144.01",
	},
	{
		Name:        "price_currency",
		XMLPath:     []string{"Tx", "Pric", "Pric", "MntryVal", "Amt", "@Ccy"},
		Type:        models.TypeString,
		Category:    models.CategoryOptional,
		Case:        models.CaseUpper,
		MaxLen:      3,
		Synonyms:    []string{"currency", "ccy"},
		Description: "Price currency (ISO 4217)",
		Example:     "USD",
	},
	{
		Name:        "price_sign",
		XMLPath:     []string{"Tx", "Pric", "Pric", "MntryVal", "Sgn"},
		Type:        models.TypeBoolean,
		Category:    models.CategoryOptional,
		Description: "Price sign indicator (true = positive)",
		Example:     "true",
	},
	{
		Name:        "trading_venue",
		XMLPath:     []string{"Tx", "TradVn"},
		Type:        models.TypeEnum,
		Category:    models.CategoryOptional,
		EnumValues:  []string{"XOFF", "SINT", "XXXX"},
		Case:        models.CaseUpper,
		Synonyms:    []string{"venue", "exchange", "mic"},
		Description: "Trading venue MIC code",
		Example:     "XOFF",
	},

	// Financial instrument block: either a direct ISIN or the Othr branch
	{
		Name:        "instrument_isin",
		XMLPath:     []string{"FinInstrm", "ISIN"},
		Type:        models.TypeString,
		Category:    models.CategoryRequired,
		Case:        models.CaseUpper,
		MaxLen:      12,
		Synonyms:    []string{"isin", "instrument", "symbol", "ticker", "product"},
		Description: "Financial instrument ISIN",
		Example:     "US0231351067",
	},
	{
		Name:        "instrument_full_name",
		XMLPath:     []string{"FinInstrm", "Othr", "FinInstrmGnlAttrbts", "FullNm"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Condition:   &models.Condition{Field: "instrument_isin", WhenEmpty: true},
		Synonyms:    []string{"instrument_name", "full_name"},
		Description: "Instrument full name, used when no ISIN is available",
	},
	{
		Name:        "instrument_classification",
		XMLPath:     []string{"FinInstrm", "Othr", "FinInstrmGnlAttrbts", "ClssfctnTp"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Case:        models.CaseUpper,
		MaxLen:      6,
		Synonyms:    []string{"cfi", "classification"},
		Description: "CFI classification code",
		Example:     "SESTXC",
	},
	{
		Name:        "instrument_notional_currency",
		XMLPath:     []string{"FinInstrm", "Othr", "FinInstrmGnlAttrbts", "NtnlCcy"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Case:        models.CaseUpper,
		MaxLen:      3,
		Synonyms:    []string{"notional_currency"},
		Description: "Notional currency of the instrument",
	},
	{
		Name:        "price_multiplier",
		XMLPath:     []string{"FinInstrm", "Othr", "DerivInstrmAttrbts", "PricMltplr"},
		Type:        models.TypeDecimal,
		Category:    models.CategoryConditional,
		Synonyms:    []string{"multiplier", "contract_size"},
		Description: "Price multiplier for derivative contracts",
		Example:     "1",
	},
	{
		Name:        "underlying_isin",
		XMLPath:     []string{"FinInstrm", "Othr", "DerivInstrmAttrbts", "UndrlygInstrm", "Othr", "Sngl", "ISIN"},
		Type:        models.TypeString,
		Category:    models.CategoryConditional,
		Case:        models.CaseUpper,
		MaxLen:      12,
		Description: "Underlying instrument ISIN",
	},
	{
		Name:        "delivery_type",
		XMLPath:     []string{"FinInstrm", "Othr", "DerivInstrmAttrbts", "DlvryTp"},
		Type:        models.TypeEnum,
		Category:    models.CategoryConditional,
		EnumValues:  []string{"CASH", "PHYS", "OPTL"},
		Case:        models.CaseUpper,
		Description: "Delivery type of the derivative",
		Example:     "CASH",
	},

	{
		Name:        "executing_person",
		XMLPath:     []string{"ExctgPrsn", "Clnt"},
		Type:        models.TypeString,
		Category:    models.CategoryOptional,
		Description: "Executing person, NORE when no natural person applies",
		Example:     "NORE",
	},
	{
		Name:        "short_sale_indicator",
		XMLPath:     []string{"AddtlAttrbts", "ShrtSellgInd"},
		Type:        models.TypeEnum,
		Category:    models.CategoryOptional,
		EnumValues:  []string{"SESH", "SSEX", "SELL", "UNDI"},
		Case:        models.CaseUpper,
		Synonyms:    []string{"position", "side", "long_short", "direction"},
		Description: "Short sale indicator",
		Example:     "UNDI",
	},
	{
		Name:        "securities_financing_indicator",
		XMLPath:     []string{"AddtlAttrbts", "SctiesFincgTxInd"},
		Type:        models.TypeBoolean,
		Category:    models.CategoryOptional,
		Synonyms:    []string{"sft", "financing"},
		Description: "Securities financing transaction indicator",
		Example:     "false",
	},
}
