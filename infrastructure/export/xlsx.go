// Package export gera arquivos a partir de relatórios já formatados
package export

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/pkg/utils"
)

const (
	SheetName       = "Monthly Sales"
	UnassignedLabel = "Unassigned records"

	titleRow  = 1
	headerRow = 2
	firstRow  = 3
)

var ErrNilReport = errors.New("relatório não informado")

type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// MonthlyReportXLSX escreve o relatório em uma planilha. Os valores formatados já vêm
// prontos do relatório; aqui não há conversão de moeda.
func (e *XLSXExporter) MonthlyReportXLSX(report *domain.MonthlyReport) ([]byte, error) {
	if report == nil {
		return nil, ErrNilReport
	}

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "Nuella Creatives Ledger",
		Company:     "Nuella Creatives",
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, SheetName); err != nil {
		return nil, errors.Wrap(err, "erro ao renomear planilha")
	}
	sheet = SheetName

	_ = xlsx.SetColWidth(sheet, "A", "A", 22)
	_ = xlsx.SetColWidth(sheet, "B", "C", 20)

	writeMonthlySheet(xlsx, sheet, report)

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar planilha")
	}
	return buf.Bytes(), nil
}

func writeMonthlySheet(xlsx *excelize.File, sheet string, report *domain.MonthlyReport) {
	code := string(report.Currency)

	_ = xlsx.SetCellValue(sheet, cell('A', titleRow), text(fmt.Sprintf("Monthly Sales Overview (%s)", code)))
	style, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), fontSize(14)))
	_ = xlsx.SetCellStyle(sheet, cell('A', titleRow), cell('C', titleRow), style)

	_ = xlsx.SetCellValue(sheet, cell('A', headerRow), "Month")
	_ = xlsx.SetCellValue(sheet, cell('B', headerRow), "Total (base)")
	_ = xlsx.SetCellValue(sheet, cell('C', headerRow), text(fmt.Sprintf("Total (%s)", code)))
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom")))
	_ = xlsx.SetCellStyle(sheet, cell('A', headerRow), cell('A', headerRow), style)
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom"), textAlignment("right")))
	_ = xlsx.SetCellStyle(sheet, cell('B', headerRow), cell('C', headerRow), style)

	row := firstRow
	for _, m := range report.Months {
		_ = xlsx.SetCellValue(sheet, cell('A', row), text(m.Month))
		_ = xlsx.SetCellFloat(sheet, cell('B', row), m.Total.InexactFloat64(), 2, 64)
		_ = xlsx.SetCellValue(sheet, cell('C', row), text(m.Formatted))
		row++
	}
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), numberFormat()))
	_ = xlsx.SetCellStyle(sheet, cell('B', firstRow), cell('B', row-1), style)
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), textAlignment("right")))
	_ = xlsx.SetCellStyle(sheet, cell('C', firstRow), cell('C', row-1), style)

	_ = xlsx.SetCellValue(sheet, cell('A', row), "Total")
	_ = xlsx.SetCellFloat(sheet, cell('B', row), report.GrandTotal.InexactFloat64(), 2, 64)
	_ = xlsx.SetCellValue(sheet, cell('C', row), text(report.GrandTotalFormatted))
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), numberFormat(), thickBorder("top")))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('B', row), style)
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thickBorder("top"), textAlignment("right")))
	_ = xlsx.SetCellStyle(sheet, cell('C', row), cell('C', row), style)
	row++

	_ = xlsx.SetCellValue(sheet, cell('A', row), UnassignedLabel)
	_ = xlsx.SetCellFloat(sheet, cell('B', row), report.UnassignedTotal.InexactFloat64(), 2, 64)
	_ = xlsx.SetCellInt(sheet, cell('C', row), report.Unassigned)
	style, _ = xlsx.NewStyle(mergeStyles(defaultStyle(), fontItalic(), numberFormat()))
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('C', row), style)
}

// text protege contra injeção de fórmulas ao abrir a planilha
func text(s string) string {
	return utils.GuardFormula(s)
}

func cell(col rune, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}

func defaultStyle() *excelize.Style {
	return &excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFFFFF"},
			Pattern: 1,
		},
	}
}

func numberFormat() *excelize.Style {
	format := "#,##0.00"
	return &excelize.Style{
		CustomNumFmt: &format,
	}
}

func fontBold() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	}
}

func fontItalic() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Italic: true,
		},
	}
}

func fontSize(size float64) *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Size: size,
		},
	}
}

func textAlignment(a string) *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: a,
		},
	}
}

func thinBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 1,
		})
	}
	return s
}

func thickBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 2,
		})
	}
	return s
}

func mergeStyles(ext ...*excelize.Style) *excelize.Style {
	if len(ext) == 0 {
		return nil
	}
	for _, e := range ext[1:] {
		_ = mergo.Merge(ext[0], e, mergo.WithOverride)
	}
	return ext[0]
}
