package infra

// pdf.go generates the customer receipt for a completed sale using
// go-pdf/fpdf. A7-ish page size, receipt-printer style:
//   - Dealership header
//   - Client, product and amount
//   - Payment method and delivery date
//   - Notes (includes the discount breakdown when one was applied)
//
// The output file is saved to storagePath/recibo_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReciboPDF writes the receipt for a Venta and returns the file path.
func GenerateReciboPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", venta.ID)
	filePath := filepath.Join(storagePath, fileName)

	// 74mm x 105mm, close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Land Roys Motos", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comprobante de Venta", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Cliente", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, venta.ClienteNombre, "", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Producto", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.MultiCell(contentW, 4, venta.Producto, "", "L", false)
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Total: $%s", venta.Monto.StringFixed(2)), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, fmt.Sprintf("Metodo de pago: %s", venta.MetodoPago), "", 1, "L", false, 0, "")
	if venta.FechaEntrega != nil {
		pdf.CellFormat(contentW, 4, fmt.Sprintf("Entrega: %s", venta.FechaEntrega.Format("02/01/2006")), "", 1, "L", false, 0, "")
	}

	if venta.Notas != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.MultiCell(contentW, 3, venta.Notas, "", "L", false)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 6)
	pdf.CellFormat(contentW, 3, "Gracias por su compra", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
