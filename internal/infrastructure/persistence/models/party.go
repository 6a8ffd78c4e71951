package models

import (
	"github.com/tradedesk/backend/internal/domain/party"
)

// PartyModel is the persistence model for the Party domain entity.
type PartyModel struct {
	AggregateModel
	Type          party.Type `gorm:"type:varchar(10);not null;index"`
	CompanyName   string     `gorm:"type:varchar(200);not null;index"`
	Address       string     `gorm:"type:text;not null"`
	ContactPerson string     `gorm:"type:varchar(100)"`
	Email         string     `gorm:"type:varchar(200)"`
	Phone         string     `gorm:"type:varchar(50)"`
	Country       string     `gorm:"type:varchar(100)"`
	TaxID         string     `gorm:"type:varchar(50)"`
	IsActive      bool       `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (PartyModel) TableName() string {
	return "parties"
}

// ToDomain converts the persistence model to a domain Party entity.
func (m *PartyModel) ToDomain() *party.Party {
	return &party.Party{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Type:              m.Type,
		CompanyName:       m.CompanyName,
		Address:           m.Address,
		ContactPerson:     m.ContactPerson,
		Email:             m.Email,
		Phone:             m.Phone,
		Country:           m.Country,
		TaxID:             m.TaxID,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Party entity.
func (m *PartyModel) FromDomain(p *party.Party) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Type = p.Type
	m.CompanyName = p.CompanyName
	m.Address = p.Address
	m.ContactPerson = p.ContactPerson
	m.Email = p.Email
	m.Phone = p.Phone
	m.Country = p.Country
	m.TaxID = p.TaxID
	m.IsActive = p.IsActive
}

// PartyModelFromDomain creates a new persistence model from a domain Party entity.
func PartyModelFromDomain(p *party.Party) *PartyModel {
	m := &PartyModel{}
	m.FromDomain(p)
	return m
}
