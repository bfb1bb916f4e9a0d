package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restobook/reservation-app/services"
	"github.com/restobook/reservation-app/utils"
	"gorm.io/gorm"
)

type TableController struct {
	tables *services.TableService
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{tables: services.NewTableService(db)}
}

// CreateTable registers a new table with its label and capacity.
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Label    string `json:"label" binding:"required"`
		Capacity int    `json:"capacity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.tables.AddTable(req.Label, req.Capacity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConflict):
			utils.RespondError(c, http.StatusConflict, errors.New("a table with that label already exists"))
		case errors.Is(err, services.ErrInvalidInput):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("New table created: %s (capacity=%d)", table.Label, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables lists every table in creation order.
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.tables.ListTables()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID returns one table.
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("table_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table id"))
		return
	}

	table, err := tc.tables.GetTable(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}
