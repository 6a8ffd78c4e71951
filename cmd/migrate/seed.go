package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tradedesk/backend/internal/domain/billing"
	"github.com/tradedesk/backend/internal/domain/catalog"
	"github.com/tradedesk/backend/internal/domain/party"
	"github.com/tradedesk/backend/internal/domain/shared"
	"github.com/tradedesk/backend/internal/infrastructure/config"
	"github.com/tradedesk/backend/internal/infrastructure/persistence"
)

// runSeed populates the master-data tables with a representative set of
// buyers, sellers, commodities, payment terms and bank accounts. It refuses
// to touch a database that already has parties unless forced.
func runSeed(cfg *config.Config, log *zap.Logger, force bool) error {
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	ctx := context.Background()

	partyRepo := persistence.NewGormPartyRepository(db.DB)
	commodityRepo := persistence.NewGormCommodityRepository(db.DB)
	termRepo := persistence.NewGormPaymentTermRepository(db.DB)
	bankRepo := persistence.NewGormBankDetailsRepository(db.DB)

	existing, err := partyRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return fmt.Errorf("failed to inspect parties table: %w", err)
	}
	if existing > 0 && !force {
		return fmt.Errorf("database already has %d parties; re-run with -force to seed anyway", existing)
	}

	parties, err := seedParties(ctx, partyRepo)
	if err != nil {
		return err
	}
	log.Info("Seeded parties", zap.Int("count", parties))

	commodities, err := seedCommodities(ctx, commodityRepo)
	if err != nil {
		return err
	}
	log.Info("Seeded commodities", zap.Int("count", commodities))

	terms, err := seedPaymentTerms(ctx, termRepo)
	if err != nil {
		return err
	}
	log.Info("Seeded payment terms", zap.Int("count", terms))

	banks, err := seedBankDetails(ctx, bankRepo)
	if err != nil {
		return err
	}
	log.Info("Seeded bank accounts", zap.Int("count", banks))

	log.Info("Database seeded successfully")
	return nil
}

type partySeed struct {
	partyType     party.Type
	companyName   string
	address       string
	contactPerson string
	email         string
	phone         string
	country       string
}

func seedParties(ctx context.Context, repo party.Repository) (int, error) {
	seeds := []partySeed{
		{
			partyType:     party.TypeBuyer,
			companyName:   "FORMOSA SHYEN HORNG METAL SDN.BHD",
			address:       "LOT 2-33, JALAN PERINDUSTRIAN MAHKOTA 2, TAMAN PERINDUSTRIAN MAHKOTA 43700 BERANANG, SELANGOR D.E., MALAYSIA",
			contactPerson: "Mr. Wong",
			email:         "procurement@formosa-shyen-horng.com.my",
			phone:         "+60-3-8724-5566",
			country:       "Malaysia",
		},
		{
			partyType:     party.TypeBuyer,
			companyName:   "MALAYSIA STEEL WORKS SDN.BHD",
			address:       "NO. 45, JALAN INDUSTRI 15, TAMAN INDUSTRI, 81100 JOHOR BAHRU, JOHOR, MALAYSIA",
			contactPerson: "Ms. Lee Mei Ling",
			email:         "purchasing@malaysiasteel.com",
			phone:         "+60-7-3551-8899",
			country:       "Malaysia",
		},
		{
			partyType:     party.TypeBuyer,
			companyName:   "SINGAPORE METALS TRADING PTE LTD",
			address:       "123 TANJONG PAGAR ROAD, #05-01, SINGAPORE 088538",
			contactPerson: "Mr. Tan Wei Jie",
			email:         "contracts@sgmetals.com.sg",
			phone:         "+65-6224-7788",
			country:       "Singapore",
		},
		{
			partyType:     party.TypeSeller,
			companyName:   "HOMI METAL CO., LTD",
			address:       "NO. 236, XINJIN RD., XINYING DIST., TAINAN CITY 730, TAIWAN (R.O.C)",
			contactPerson: "Mr. Chen",
			email:         "export@homimetal.com.tw",
			phone:         "+886-6-633-5566",
			country:       "Taiwan",
		},
		{
			partyType:     party.TypeSeller,
			companyName:   "TAIWAN STEEL CORPORATION",
			address:       "NO. 189, ZHONGZHENG RD., KAOHSIUNG CITY 800, TAIWAN",
			contactPerson: "Ms. Wang",
			email:         "sales@taiwansteel.com",
			phone:         "+886-7-551-2233",
			country:       "Taiwan",
		},
	}

	for _, s := range seeds {
		p, err := party.NewParty(s.partyType, s.companyName, s.address)
		if err != nil {
			return 0, fmt.Errorf("failed to build party %q: %w", s.companyName, err)
		}
		if err := p.SetContact(s.contactPerson, s.email, s.phone); err != nil {
			return 0, fmt.Errorf("failed to set contact for %q: %w", s.companyName, err)
		}
		p.SetLocation(s.country, "")
		if err := repo.Save(ctx, p); err != nil {
			return 0, fmt.Errorf("failed to save party %q: %w", s.companyName, err)
		}
	}
	return len(seeds), nil
}

type commoditySeed struct {
	name           string
	description    string
	hsCode         string
	defaultOrigin  string
	defaultPacking string
}

func seedCommodities(ctx context.Context, repo catalog.Repository) (int, error) {
	seeds := []commoditySeed{
		{
			name:           "Extrusion 1% attachment",
			description:    "Aluminum extrusion scrap with 1% attachment, in 20-40 feet containers",
			hsCode:         "7602.00.00",
			defaultOrigin:  "Taiwan",
			defaultPacking: "In 20-40 feet Containers",
		},
		{
			name:           "Aluminum Scrap 6063",
			description:    "Aluminum scrap alloy 6063, clean and dry",
			hsCode:         "7602.00.00",
			defaultOrigin:  "Taiwan",
			defaultPacking: "In containers or loose",
		},
		{
			name:           "Copper Scrap Millberry",
			description:    "Copper wire scrap, 99.9% purity",
			hsCode:         "7404.00.00",
			defaultOrigin:  "USA",
			defaultPacking: "In bales or containers",
		},
		{
			name:           "Stainless Steel Scrap 304",
			description:    "Stainless steel scrap grade 304",
			hsCode:         "7204.21.00",
			defaultOrigin:  "Japan",
			defaultPacking: "In bundles or containers",
		},
		{
			name:           "Zinc Scrap",
			description:    "Zinc scrap, mixed grades",
			hsCode:         "7902.00.00",
			defaultOrigin:  "China",
			defaultPacking: "In bulk or containers",
		},
	}

	for _, s := range seeds {
		c, err := catalog.NewCommodity(s.name, s.description)
		if err != nil {
			return 0, fmt.Errorf("failed to build commodity %q: %w", s.name, err)
		}
		if err := c.SetTradeDefaults(s.hsCode, catalog.UnitMT, s.defaultOrigin, s.defaultPacking); err != nil {
			return 0, fmt.Errorf("failed to set trade defaults for %q: %w", s.name, err)
		}
		if err := repo.Save(ctx, c); err != nil {
			return 0, fmt.Errorf("failed to save commodity %q: %w", s.name, err)
		}
	}
	return len(seeds), nil
}

type paymentTermSeed struct {
	name        string
	description string
	terms       string
	deposit     int64
	daysFromBL  int
}

func seedPaymentTerms(ctx context.Context, repo billing.PaymentTermRepository) (int, error) {
	seeds := []paymentTermSeed{
		{
			name:        "10% Deposit + Balance TT",
			description: "Buyer will arrange 10% deposit TT and balance TT against copy docs within 5 days to the Seller's account",
			terms:       "T/T 10% deposit + balance against copy docs within 5 days",
			deposit:     10,
			daysFromBL:  5,
		},
		{
			name:        "100% TT in Advance",
			description: "100% payment by Telegraphic Transfer before shipment",
			terms:       "100% T/T before shipment",
			deposit:     100,
			daysFromBL:  0,
		},
		{
			name:        "30% Deposit + 70% at sight",
			description: "30% deposit TT, 70% by L/C at sight",
			terms:       "30% T/T deposit + 70% L/C at sight",
			deposit:     30,
			daysFromBL:  0,
		},
		{
			name:        "CAD (Cash Against Documents)",
			description: "Payment against presentation of shipping documents",
			terms:       "CAD - Cash against documents",
			deposit:     0,
			daysFromBL:  3,
		},
		{
			name:        "Net 30 days",
			description: "Payment due 30 days from Bill of Lading date",
			terms:       "Net 30 days from B/L date",
			deposit:     0,
			daysFromBL:  30,
		},
		{
			name:        "L/C 90 days",
			description: "Letter of Credit payable 90 days after B/L date",
			terms:       "L/C 90 days from B/L date",
			deposit:     0,
			daysFromBL:  90,
		},
	}

	for _, s := range seeds {
		t, err := billing.NewPaymentTerm(s.name, s.description, s.terms)
		if err != nil {
			return 0, fmt.Errorf("failed to build payment term %q: %w", s.name, err)
		}
		if err := t.SetSchedule(decimal.NewFromInt(s.deposit), s.daysFromBL); err != nil {
			return 0, fmt.Errorf("failed to set schedule for %q: %w", s.name, err)
		}
		if err := repo.Save(ctx, t); err != nil {
			return 0, fmt.Errorf("failed to save payment term %q: %w", s.name, err)
		}
	}
	return len(seeds), nil
}

type bankSeed struct {
	bankName      string
	accountName   string
	accountNumber string
	swiftCode     string
	bankAddress   string
	isDefault     bool
}

func seedBankDetails(ctx context.Context, repo billing.BankDetailsRepository) (int, error) {
	seeds := []bankSeed{
		{
			bankName:      "TAIPEI FUBON COMMERCIAL BANK, HSINYING BRANCH",
			accountName:   "HOMI METAL CO., LTD",
			accountNumber: "NO. 566-7596-8123",
			swiftCode:     "TPBKTWTP",
			bankAddress:   "1F., NO 150, FUXING RD., XINYING DIST., TAINAN CITY",
			isDefault:     true,
		},
		{
			bankName:      "CATHAY UNITED BANK",
			accountName:   "HOMI METAL CO., LTD",
			accountNumber: "123-456-789012",
			swiftCode:     "ESBKTWTP",
			bankAddress:   "NO. 99, ZHONGSHAN RD., TAIPEI CITY, TAIWAN",
			isDefault:     false,
		},
	}

	for _, s := range seeds {
		b, err := billing.NewBankDetails(s.bankName, s.accountName, s.accountNumber, s.swiftCode)
		if err != nil {
			return 0, fmt.Errorf("failed to build bank details %q: %w", s.bankName, err)
		}
		b.SetWireDetails(s.bankAddress, "", "USD")
		if s.isDefault {
			b.MarkDefault()
		}
		if err := repo.Save(ctx, b); err != nil {
			return 0, fmt.Errorf("failed to save bank details %q: %w", s.bankName, err)
		}
	}
	return len(seeds), nil
}
