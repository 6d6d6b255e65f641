package domain

// FreightMode determines the unit of a rate: per container for ocean,
// per kilogram for air.
type FreightMode string

const (
	FreightModeOcean FreightMode = "ocean"
	FreightModeAir   FreightMode = "air"
)

// RateType distinguishes long-validity negotiated rates from
// short-validity market rates.
type RateType string

const (
	RateTypeContract RateType = "contract"
	RateTypeSpot     RateType = "spot"
)

// ChargeName identifies a freight-industry fee line item.
type ChargeName string

const (
	ChargeBasicFreight        ChargeName = "Basic Freight"
	ChargeBunkerAdjustment    ChargeName = "BAF (Bunker Adjustment Factor)"
	ChargeCurrencyAdjustment  ChargeName = "CAF (Currency Adjustment Factor)"
	ChargeFuelSurcharge       ChargeName = "Fuel Surcharge"
	ChargeDocumentationFee    ChargeName = "Documentation Fee"
	ChargeTerminalHandling    ChargeName = "Terminal Handling Charges"
	ChargeSecurityFee         ChargeName = "Security Fee"
	ChargeCustomsClearance    ChargeName = "Customs Clearance"
	ChargeInlandTransport     ChargeName = "Inland Transportation"
	ChargeInsurance           ChargeName = "Insurance"
	ChargeWarehousing         ChargeName = "Warehousing"
	ChargeContainerFreightStn ChargeName = "Container Freight Station"
	ChargePortCongestion      ChargeName = "Port Congestion Surcharge"
	ChargePeakSeason          ChargeName = "Peak Season Surcharge"
	ChargeWarRisk             ChargeName = "War Risk Surcharge"
	ChargeLowSulfur           ChargeName = "Low Sulfur Surcharge"
	ChargeEquipmentImbalance  ChargeName = "Equipment Imbalance Surcharge"
)

// Charge is a single fee line on a rate. Amount is nil when the cost is
// folded into the base rate with no separately stated value. A charge with
// Included=false carries the extra cost the customer pays if they opt in.
type Charge struct {
	Name     ChargeName
	Included bool
	Amount   *float64
	Currency string
}

// FreightRate is a carrier rate for a single origin/destination lane.
//
// TotalRate is the advertised all-in price computed upstream as the base
// rate plus the included charge amounts. It is stored as authoritative and
// never re-derived from Charges at read time; the catalog's stored totals
// are what consumers render.
type FreightRate struct {
	ID            string
	Mode          FreightMode
	Type          RateType
	Origin        string
	Destination   string
	Carrier       string
	ValidFrom     string // ISO 8601 date, inclusive
	ValidTo       string // ISO 8601 date, inclusive
	TransitTime   int    // days in transit
	BaseRate      float64
	Currency      string
	ContainerType string // ocean only; empty for air
	Charges       []Charge
	TotalRate     float64
}
