package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	dbmodels "job-board-backend/models/db"
)

// шрифты с кириллицей поставляются вместе с сервисом
var fontDir = "static/font/"

const fontFamily = "DejaVu"

// GenerateResume формирует pdf файл резюме
func GenerateResume(rec dbmodels.Resume) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateResume panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", fontDir)
	pdf.AddPage()
	pdf.AddUTF8Font(fontFamily, "", "DejaVuSans.ttf")
	pdf.AddUTF8Font(fontFamily, "B", "DejaVuSans-Bold.ttf")
	pdf.SetFont(fontFamily, "B", 18)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.Cell(0, 10, rec.GetFIO())
	pdf.Ln(14)

	pdf.SetFont(fontFamily, "", 14)
	_, lineHt := pdf.GetFontSize()
	specialtyTitle := rec.SpecialtyCode
	if rec.Specialty != nil {
		specialtyTitle = rec.Specialty.Title
	}
	htmlStr := fmt.Sprintf("<b>Специализация:</b> %v<br>", specialtyTitle) +
		fmt.Sprintf("<b>Уровень:</b> %v<br>", rec.Grade.String()) +
		fmt.Sprintf("<b>Статус:</b> %v<br>", rec.Status.String()) +
		fmt.Sprintf("<b>Ожидаемая зарплата:</b> %v руб.<br>", rec.Salary)
	html := pdf.HTMLBasicNew()
	html.Write(lineHt, htmlStr)
	pdf.Ln(8)

	writeSection(pdf, "Образование", rec.Education)
	writeSection(pdf, "Опыт работы", rec.Experience)
	writeSection(pdf, "Портфолио", rec.Portfolio)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, title, body string) {
	if body == "" {
		return
	}
	pdf.SetFont(fontFamily, "B", 14)
	pdf.Cell(0, 8, title)
	pdf.Ln(10)
	pdf.SetFont(fontFamily, "", 12)
	pdf.MultiCell(0, 6, body, "", "L", false)
	pdf.Ln(4)
}
