package record

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRecordRoutes(router *gin.RouterGroup, db *gorm.DB) {
	recordController := NewRecordController(NewRecordRepository(db))

	router.GET("/records", recordController.GetRecords)
}
