package xlsx

// ConfigSheetName is the metadata sheet; matched case-insensitively on read
const ConfigSheetName = "CONFIG"

// CONFIG sheet: row 0 is a header, row 1 holds the company metadata
const (
	configDataRow   = 1
	configColName   = 0
	configColModel  = 1
	configColMargin = 2
)

// Tariff sheets: row 0 is a title, row 1 a column header, data starts at row 2
const (
	tariffTitleRow     = 0
	tariffHeaderRow    = 1
	tariffFirstDataRow = 2

	colProduct = 0
	colFee     = 1
	colMin     = 2
	colMax     = 3
	colAmount  = 4

	// minHeaderColumns is the column count a tariff sheet header must reach
	minHeaderColumns = 5
)

var configHeader = []interface{}{"Empresa", "Modelo", "Margen GNEW"}

var tariffHeader = []interface{}{
	"Producto",
	"Fee",
	"Consumo desde (kWh)",
	"Consumo hasta (kWh)",
	"Comisión (€)",
}
