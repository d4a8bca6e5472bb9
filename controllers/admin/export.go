package adminController

import (
	"net/http"
	"strings"

	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// BuildWorkbook writes the current products, reviews and orders into one
// workbook, a sheet each.
func BuildWorkbook(s *store.Store) (*xlsx.File, error) {
	file := xlsx.NewFile()

	products, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}
	addRow(products, "ID", "Name", "Price", "Image", "Description",
		"Range", "Charging", "TopSpeed", "Acceleration", "Features")
	for _, p := range s.Products() {
		addRow(products, p.ID, p.Name, p.Price, p.Image, p.Description,
			p.Specifications.Range, p.Specifications.Charging,
			p.Specifications.TopSpeed, p.Specifications.Acceleration,
			strings.Join(p.Features, "; "))
	}

	reviews, err := file.AddSheet("Reviews")
	if err != nil {
		return nil, err
	}
	addRow(reviews, "ID", "Name", "Email", "Rating", "Comment", "Date", "ProductID", "ProductName", "Approved")
	for _, r := range s.Reviews() {
		addRow(reviews, r.ID, r.Name, r.Email, r.Rating, r.Comment, r.Date, r.ProductID, r.ProductName, r.Approved)
	}

	orders, err := file.AddSheet("Orders")
	if err != nil {
		return nil, err
	}
	addRow(orders, "ID", "CustomerName", "Phone", "Product", "Date", "Status")
	for _, o := range s.Orders() {
		addRow(orders, o.ID, o.CustomerName, o.Phone, o.Product, o.Date, string(o.Status))
	}

	return file, nil
}

func addRow(sheet *xlsx.Sheet, values ...interface{}) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetValue(v)
	}
}

// ExportWorkbook streams BuildWorkbook as charzdev.xlsx.
func ExportWorkbook(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := BuildWorkbook(s)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=charzdev.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
