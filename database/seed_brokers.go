package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"market-pulse/models"
)

// SeedBrokers loads the broker comparison table. Existing rows are kept.
func SeedBrokers(db *gorm.DB) error {
	rows := Brokers()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("seed brokers: %w", err)
	}
	return nil
}

// Brokers returns a fresh copy of the static broker dataset.
func Brokers() []models.Broker {
	return []models.Broker{
		{
			ID:    1,
			Name:  "Zerodha",
			Logo:  "https://zerodha.com/static/images/logo.svg",
			Type:  "Discount Broker",
			Badge: "👑 Industry Leader",
			Charges: models.Charges{
				AccountOpening: "₹0 (Free)*",
				Maintenance:    "₹300/year",
				Delivery:       "₹0 (Free)",
				Intraday:       "₹20 or 0.03%",
			},
			Pros: []string{
				"Cleanest & Fastest UI (Kite)",
				"Zero Spam Calls / Tips",
				"Best Educational Content (Varsity)",
				"Nudge Feature to stop bad trades",
			},
			Cons: []string{
				"Demat AMC ₹300/year",
				"No Advisory/Tips provided",
				"Occasional tech glitches",
			},
			SuitableFor:    "Serious Investors & Traders",
			Recommendation: "Choose this if you want a no-nonsense, professional trading experience and hate spam calls.",
			Link:           "https://zerodha.com/open-account",
			Footnote:       "*Free for all resident Indians (was ₹200 earlier)",
		},
		{
			ID:    2,
			Name:  "Groww",
			Logo:  "https://groww.in/groww-logo-270.png",
			Type:  "Discount Broker",
			Badge: "❤️ Best for Beginners",
			Charges: models.Charges{
				AccountOpening: "₹0 (Free)",
				Maintenance:    "₹0 (Lifetime Free)",
				Delivery:       "₹20 or 0.05%",
				Intraday:       "₹20 or 0.05%",
			},
			Pros: []string{
				"Super simple, clutter-free UI",
				"Paperless, instant Account Opening",
				"Direct Mutual Funds integration",
				"Zero AMC (Annual Fees)",
			},
			Cons: []string{
				"Limited features for Pro Traders",
				"Charts are basic vs TradingView",
				"Customer support can be slow",
			},
			SuitableFor:    "GenZ, Beginners & MF Investors",
			Recommendation: "Choose this if you are opening your first account and find charts/numbers scary.",
			Link:           "https://app.groww.in/v3cO/8dxtpv2b",
		},
		{
			ID:    3,
			Name:  "Angel One",
			Logo:  "https://www.angelone.in/favicon.ico",
			Type:  "Full Service (Hybrid)",
			Badge: "🤖 Best Technology",
			Charges: models.Charges{
				AccountOpening: "₹0 (Free)",
				Maintenance:    "₹240/year",
				Delivery:       "₹0 (Free)",
				Intraday:       "₹20 or 0.03%",
			},
			Pros: []string{
				"Free Advisory & Stock Tips",
				"SmartAPI for algo trading (Free)",
				"Margin Trading Facility (MTF)",
				"Good for non-English speakers",
			},
			Cons: []string{
				"App UI feels a bit cluttered",
				"Sales calls/notifications can be annoying",
				"Hidden charges in MTF",
			},
			SuitableFor:    "People who want guidance/tips",
			Recommendation: "Choose this if you want 'Stock Tips' inside the app and need high leverage (margin).",
			Link:           "https://www.angelone.in/",
		},
		{
			ID:    4,
			Name:  "Upstox",
			Logo:  "https://upstox.com/favicon.ico",
			Type:  "Discount Broker",
			Badge: "🚀 Trader's Choice",
			Charges: models.Charges{
				AccountOpening: "₹0 (Free)",
				Maintenance:    "₹150/year (Waived often)",
				Delivery:       "₹20 or 2.5%",
				Intraday:       "₹20 or 0.05%",
			},
			Pros: []string{
				"Very fast mobile app",
				"Good charting tools (TradingView)",
				"Backed by Ratan Tata (Trust)",
				"Option Chain analysis is excellent",
			},
			Cons: []string{
				"Delivery is NOT free (₹20 charge)",
				"Customer service is average",
				"UI changes frequently",
			},
			SuitableFor:    "Active Day Traders (F&O)",
			Recommendation: "Choose this if you trade Options/Futures and need a fast, reliable mobile app.",
			Link:           "https://upstox.com/",
		},
		{
			ID:    5,
			Name:  "Dhan",
			Logo:  "https://dhan.co/favicon.ico",
			Type:  "Discount Broker",
			Badge: "⚡ Best for Charting",
			Charges: models.Charges{
				AccountOpening: "₹0 (Free)",
				Maintenance:    "₹0 (Lifetime Free)",
				Delivery:       "₹0 (Free)",
				Intraday:       "₹20 or 0.03%",
			},
			Pros: []string{
				"Deep integration with TradingView",
				"Instant Payouts (Fastest withdrawal)",
				"Dedicated Option Trader App",
				"Free Account & AMC",
			},
			Cons: []string{
				"Newer player (Less track record)",
				"UI can be overwhelming",
				"Web platform uses high RAM",
			},
			SuitableFor:    "Chartists & heavy Technical Analysts",
			Recommendation: "Choose this if you love reading charts and want TradingView Premium features for free.",
			Link:           "https://dhan.co/",
		},
		{
			ID:    6,
			Name:  "Kotak Neo",
			Logo:  "https://www.kotaksecurities.com/favicon.ico",
			Type:  "Discount Broker",
			Badge: "💸 Zero Brokerage",
			Charges: models.Charges{
				AccountOpening: "₹0 (Free)",
				Maintenance:    "₹50/mo (Trade Free)",
				Delivery:       "₹0 (Free)",
				Intraday:       "₹0 (Free for Youth)",
			},
			Pros: []string{
				"Brokerage Free Intraday trades",
				"Backed by Kotak Bank (Safety)",
				"Good research reports",
				"Margin against shares is easy",
			},
			Cons: []string{
				"App is still buggy vs Zerodha",
				"Legacy system issues",
				"Zero brokerage plan has T&C",
			},
			SuitableFor:    "Traders under 30 (Youth)",
			Recommendation: "Choose this if you are under 30 and want to save thousands in brokerage fees.",
			Link:           "https://www.kotaksecurities.com/",
		},
		{
			ID:    7,
			Name:  "ICICI Direct",
			Logo:  "https://www.icicidirect.com/favicon.ico",
			Type:  "Full Service",
			Badge: "🏦 Bank Trust",
			Charges: models.Charges{
				AccountOpening: "₹0 (Free)",
				Maintenance:    "₹700/year (High)",
				Delivery:       "0.55% (High)",
				Intraday:       "0.27%",
			},
			Pros: []string{
				"3-in-1 Account (Bank+Demat+Trade)",
				"Instant fund transfer",
				"Relationship Manager provided",
				"IPO application is seamless",
			},
			Cons: []string{
				"Very expensive brokerage",
				"Hidden charges",
				"Old-school interface",
			},
			SuitableFor:    "Conservative/Retired Investors",
			Recommendation: "Choose this if you don't trust apps and want your demat linked directly to your bank account.",
			Link:           "https://www.icicidirect.com/",
		},
		{
			ID:    8,
			Name:  "Paytm Money",
			Logo:  "https://www.paytmmoney.com/favicon.ico",
			Type:  "Discount Broker",
			Badge: "📱 Mobile First",
			Charges: models.Charges{
				AccountOpening: "₹0 (Free)",
				Maintenance:    "₹0 (Limited time)",
				Delivery:       "₹15 or 2.5%",
				Intraday:       "₹15 or 0.05%",
			},
			Pros: []string{
				"Cheapest brokerage (₹15 vs ₹20)",
				"Integrated with Paytm ecosystem",
				"Good Voice Trading feature",
				"Simple SIP management",
			},
			Cons: []string{
				"Features are very basic",
				"Web platform is not great",
				"Support via tickets only",
			},
			SuitableFor:    "Casual Paytm Users",
			Recommendation: "Choose this if you already use Paytm for everything and just want to buy a few stocks occasionally.",
			Link:           "https://www.paytmmoney.com/",
		},
	}
}
