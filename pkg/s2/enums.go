package s2

// RoleType classifies how a resource participates in the energy system.
type RoleType string

const (
	RoleTypeEnergyProducer RoleType = "ENERGY_PRODUCER"
	RoleTypeEnergyConsumer RoleType = "ENERGY_CONSUMER"
	RoleTypeEnergyStorage  RoleType = "ENERGY_STORAGE"
)

// IsValid returns true for a known role type.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleTypeEnergyProducer, RoleTypeEnergyConsumer, RoleTypeEnergyStorage:
		return true
	}
	return false
}

// Commodity is an energy commodity.
type Commodity string

const (
	CommodityGas         Commodity = "GAS"
	CommodityHeat        Commodity = "HEAT"
	CommodityElectricity Commodity = "ELECTRICITY"
	CommodityOil         Commodity = "OIL"
)

// IsValid returns true for a known commodity.
func (c Commodity) IsValid() bool {
	switch c {
	case CommodityGas, CommodityHeat, CommodityElectricity, CommodityOil:
		return true
	}
	return false
}

// CommodityQuantity identifies a measurable quantity of a commodity.
type CommodityQuantity string

const (
	// ElectricPowerL1 is electric power in Watt on phase 1. Single-phase
	// devices always use L1.
	ElectricPowerL1 CommodityQuantity = "ELECTRIC.POWER.L1"

	// ElectricPowerL2 is electric power in Watt on phase 2. Only applicable
	// for 3-phase devices.
	ElectricPowerL2 CommodityQuantity = "ELECTRIC.POWER.L2"

	// ElectricPowerL3 is electric power in Watt on phase 3. Only applicable
	// for 3-phase devices.
	ElectricPowerL3 CommodityQuantity = "ELECTRIC.POWER.L3"

	// ElectricPower3PhaseSym is electric power in Watt shared equally among
	// the three phases.
	ElectricPower3PhaseSym CommodityQuantity = "ELECTRIC.POWER.3_PHASE_SYM"

	// NaturalGasFlowRate is gas flow in liters per second.
	NaturalGasFlowRate CommodityQuantity = "NATURAL_GAS.FLOW_RATE"

	// HydrogenFlowRate is hydrogen flow in grams per second.
	HydrogenFlowRate CommodityQuantity = "HYDROGEN.FLOW_RATE"

	// HeatTemperature is heat temperature in degrees Celsius.
	HeatTemperature CommodityQuantity = "HEAT.TEMPERATURE"

	// HeatFlowRate is the flow of heat-carrying gas or liquid in liters per
	// second.
	HeatFlowRate CommodityQuantity = "HEAT.FLOW_RATE"

	// HeatThermalPower is thermal power in Watt.
	HeatThermalPower CommodityQuantity = "HEAT.THERMAL_POWER"

	// OilFlowRate is oil flow in liters per hour.
	OilFlowRate CommodityQuantity = "OIL.FLOW_RATE"

	// QuantityCurrency is a currency-related quantity.
	QuantityCurrency CommodityQuantity = "CURRENCY"
)

// IsValid returns true for a known commodity quantity.
func (q CommodityQuantity) IsValid() bool {
	switch q {
	case ElectricPowerL1, ElectricPowerL2, ElectricPowerL3,
		ElectricPower3PhaseSym, NaturalGasFlowRate, HydrogenFlowRate,
		HeatTemperature, HeatFlowRate, HeatThermalPower, OilFlowRate,
		QuantityCurrency:
		return true
	}
	return false
}

// ControlType identifies a control paradigm a simulation can operate
// under.
type ControlType string

const (
	ControlTypePowerEnvelope ControlType = "POWER_ENVELOPE_BASED_CONTROL"
	ControlTypePowerProfile  ControlType = "POWER_PROFILE_BASED_CONTROL"
	ControlTypeOperationMode ControlType = "OPERATION_MODE_BASED_CONTROL"
	ControlTypeFillRate      ControlType = "FILL_RATE_BASED_CONTROL"
	ControlTypeDemandDriven  ControlType = "DEMAND_DRIVEN_BASED_CONTROL"

	// ControlTypeNotControllable marks a resource that only provides
	// forecasts and measurements.
	ControlTypeNotControllable ControlType = "NOT_CONTROLABLE"

	// ControlTypeNoSelection marks that no control type has been selected
	// yet.
	ControlTypeNoSelection ControlType = "NO_SELECTION"
)

// IsValid returns true for a known control type.
func (c ControlType) IsValid() bool {
	switch c {
	case ControlTypePowerEnvelope, ControlTypePowerProfile,
		ControlTypeOperationMode, ControlTypeFillRate,
		ControlTypeDemandDriven, ControlTypeNotControllable,
		ControlTypeNoSelection:
		return true
	}
	return false
}

// IsControllable returns true if the control type allows the CEC to issue
// instructions.
func (c ControlType) IsControllable() bool {
	switch c {
	case ControlTypePowerEnvelope, ControlTypePowerProfile,
		ControlTypeOperationMode, ControlTypeFillRate,
		ControlTypeDemandDriven:
		return true
	}
	return false
}
