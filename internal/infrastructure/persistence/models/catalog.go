package models

import (
	"github.com/tradedesk/backend/internal/domain/catalog"
)

// CommodityModel is the persistence model for the Commodity domain entity.
type CommodityModel struct {
	AggregateModel
	Name           string       `gorm:"type:varchar(200);not null;index"`
	Description    string       `gorm:"type:text;not null"`
	HSCode         string       `gorm:"type:varchar(20)"`
	DefaultUnit    catalog.Unit `gorm:"type:varchar(10);not null;default:'MT'"`
	DefaultOrigin  string       `gorm:"type:varchar(100)"`
	DefaultPacking string       `gorm:"type:varchar(200)"`
	IsActive       bool         `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (CommodityModel) TableName() string {
	return "commodities"
}

// ToDomain converts the persistence model to a domain Commodity entity.
func (m *CommodityModel) ToDomain() *catalog.Commodity {
	return &catalog.Commodity{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		HSCode:            m.HSCode,
		DefaultUnit:       m.DefaultUnit,
		DefaultOrigin:     m.DefaultOrigin,
		DefaultPacking:    m.DefaultPacking,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Commodity entity.
func (m *CommodityModel) FromDomain(c *catalog.Commodity) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Description = c.Description
	m.HSCode = c.HSCode
	m.DefaultUnit = c.DefaultUnit
	m.DefaultOrigin = c.DefaultOrigin
	m.DefaultPacking = c.DefaultPacking
	m.IsActive = c.IsActive
}

// CommodityModelFromDomain creates a new persistence model from a domain Commodity entity.
func CommodityModelFromDomain(c *catalog.Commodity) *CommodityModel {
	m := &CommodityModel{}
	m.FromDomain(c)
	return m
}
