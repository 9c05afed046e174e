package domain

type Address struct {
	State   string `json:"state"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Offers struct {
	Bed       string `json:"bed"`
	Shower    string `json:"shower"`
	Occupants string `json:"occupants"`
}

// Property is a rentable listing. ID is assigned once when the dataset is
// loaded and travels with the record from then on.
type Property struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  Address  `json:"address"`
	Rating   float64  `json:"rating"`
	Category []string `json:"category"`
	Price    float64  `json:"price"`
	Offers   Offers   `json:"offers"`
	Image    string   `json:"image,omitempty"`
	Discount string   `json:"discount,omitempty"`
}
