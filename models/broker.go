package models

type Charges struct {
	AccountOpening string `json:"account_opening"`
	Maintenance    string `json:"maintenance"`
	Delivery       string `json:"delivery"`
	Intraday       string `json:"intraday"`
}

type Broker struct {
	ID             uint     `json:"id" gorm:"primaryKey"`
	Name           string   `json:"name" gorm:"uniqueIndex"`
	Logo           string   `json:"logo"`
	Type           string   `json:"type" gorm:"index"`
	Badge          string   `json:"badge"`
	Charges        Charges  `json:"charges" gorm:"embedded;embeddedPrefix:charge_"`
	Pros           []string `json:"pros" gorm:"serializer:json"`
	Cons           []string `json:"cons" gorm:"serializer:json"`
	SuitableFor    string   `json:"suitable_for"`
	Recommendation string   `json:"recommendation"`
	Link           string   `json:"link"`
	Footnote       string   `json:"footnote,omitempty"`
}
