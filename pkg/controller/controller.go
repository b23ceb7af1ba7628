// Package controller defines the Central Energy Controller contract: the
// CEC side of the protocol that receives simulation artifacts, power
// measurements, and forecasts, and revokes previously accepted artifacts.
//
// Concrete controllers embed UnimplementedController and override the
// handlers for the paradigms they support. Every unoverridden operation
// reports a rejection carrying ErrNotImplemented, which callers must
// distinguish from a business rejection: the latter returns a REJECTED
// reception status with a nil error.
package controller

import (
	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/ddbc"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/frbc"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/ombc"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/pebc"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/ppbc"
)

// UpdateKind identifies the concrete artifact carried by a
// SimulationUpdate.
type UpdateKind string

const (
	UpdateDetails                UpdateKind = "SIMULATION_DETAILS"
	UpdateControlTypeSelection   UpdateKind = "CONTROL_TYPE_SELECTION"
	UpdatePEBCPowerConstraints   UpdateKind = "PEBC_POWER_CONSTRAINTS"
	UpdatePEBCEnergyConstraints  UpdateKind = "PEBC_ENERGY_CONSTRAINTS"
	UpdatePPBCProfileDefinition  UpdateKind = "PPBC_POWER_PROFILE_DEFINITION"
	UpdateOMBCSystemDescription  UpdateKind = "OMBC_SYSTEM_DESCRIPTION"
	UpdateFRBCSystemDescription  UpdateKind = "FRBC_SYSTEM_DESCRIPTION"
	UpdateFRBCLeakageBehaviour   UpdateKind = "FRBC_LEAKAGE_BEHAVIOUR"
	UpdateFRBCUsageForecast      UpdateKind = "FRBC_USAGE_FORECAST"
	UpdateFRBCFillLevelTarget    UpdateKind = "FRBC_FILL_LEVEL_TARGET_PROFILE"
	UpdateDDBCSystemDescription  UpdateKind = "DDBC_SYSTEM_DESCRIPTION"
	UpdateDDBCDemandRateForecast UpdateKind = "DDBC_AVERAGE_DEMAND_RATE_FORECAST"
)

// SimulationUpdate is one artifact pushed from a simulation to the CEC.
// The set of implementations is closed; switch on Kind or type-switch on
// the concrete wrapper to dispatch.
type SimulationUpdate interface {
	Kind() UpdateKind
}

// DetailsUpdate announces or refreshes the simulation's identity and
// capabilities.
type DetailsUpdate struct {
	Details s2.SimulationDetails
}

// ControlTypeSelection reports which control paradigm the simulation has
// activated.
type ControlTypeSelection struct {
	ControlType s2.ControlType
}

// PEBCPowerConstraintsUpdate carries new power envelope constraints.
type PEBCPowerConstraintsUpdate struct {
	Constraints pebc.PowerConstraints
}

// PEBCEnergyConstraintsUpdate carries new average power bounds.
type PEBCEnergyConstraintsUpdate struct {
	Constraints pebc.EnergyConstraints
}

// PPBCProfileDefinitionUpdate carries a new power profile definition.
type PPBCProfileDefinitionUpdate struct {
	Definition ppbc.PowerProfileDefinition
}

// OMBCSystemDescriptionUpdate carries a new OMBC system description.
type OMBCSystemDescriptionUpdate struct {
	Description ombc.SystemDescription
}

// FRBCSystemDescriptionUpdate carries a new FRBC system description.
type FRBCSystemDescriptionUpdate struct {
	Description frbc.SystemDescription
}

// FRBCLeakageBehaviourUpdate carries new storage leakage behaviour. At
// most one is valid per simulation; a new one supersedes the old.
type FRBCLeakageBehaviourUpdate struct {
	Behaviour frbc.LeakageBehaviour
}

// FRBCUsageForecastUpdate carries a new storage usage forecast. At most
// one is valid per simulation.
type FRBCUsageForecastUpdate struct {
	Forecast frbc.UsageForecast
}

// FRBCFillLevelTargetUpdate carries a new fill level target profile. At
// most one is valid per simulation.
type FRBCFillLevelTargetUpdate struct {
	Profile frbc.FillLevelTargetProfile
}

// DDBCSystemDescriptionUpdate carries a new DDBC system description.
type DDBCSystemDescriptionUpdate struct {
	Description ddbc.SystemDescription
}

// DDBCDemandRateForecastUpdate carries a new average demand rate
// forecast.
type DDBCDemandRateForecastUpdate struct {
	Forecast ddbc.AverageDemandRateForecast
}

func (DetailsUpdate) Kind() UpdateKind { return UpdateDetails }

func (ControlTypeSelection) Kind() UpdateKind { return UpdateControlTypeSelection }

func (PEBCPowerConstraintsUpdate) Kind() UpdateKind { return UpdatePEBCPowerConstraints }

func (PEBCEnergyConstraintsUpdate) Kind() UpdateKind { return UpdatePEBCEnergyConstraints }

func (PPBCProfileDefinitionUpdate) Kind() UpdateKind { return UpdatePPBCProfileDefinition }

func (OMBCSystemDescriptionUpdate) Kind() UpdateKind { return UpdateOMBCSystemDescription }

func (FRBCSystemDescriptionUpdate) Kind() UpdateKind { return UpdateFRBCSystemDescription }

func (FRBCLeakageBehaviourUpdate) Kind() UpdateKind { return UpdateFRBCLeakageBehaviour }

func (FRBCUsageForecastUpdate) Kind() UpdateKind { return UpdateFRBCUsageForecast }

func (FRBCFillLevelTargetUpdate) Kind() UpdateKind { return UpdateFRBCFillLevelTarget }

func (DDBCSystemDescriptionUpdate) Kind() UpdateKind { return UpdateDDBCSystemDescription }

func (DDBCDemandRateForecastUpdate) Kind() UpdateKind { return UpdateDDBCDemandRateForecast }

// Controller is the CEC-side contract. Every operation acknowledges with
// a ReceptionStatus; the error return carries s2.ErrNotImplemented when
// the controller does not provide the operation at all, as opposed to a
// REJECTED status with a nil error for a business rejection.
//
// Revocations of multi-instance artifacts are keyed by simulation and
// artifact ID. Leakage behaviour, usage forecast, and fill level target
// profile exist at most once per simulation and are revoked by
// simulation ID alone.
type Controller interface {
	// ProcessSimulationUpdate handles one pushed artifact.
	ProcessSimulationUpdate(simulationID s2.ID, update SimulationUpdate) (s2.ReceptionStatus, error)

	// ProcessPowerMeasurement handles a measured power sample.
	ProcessPowerMeasurement(simulationID s2.ID, measurement s2.PowerMeasurement) (s2.ReceptionStatus, error)

	// ProcessPowerForecast handles a power forecast, identified so it can
	// be revoked later.
	ProcessPowerForecast(simulationID, forecastID s2.ID, forecast s2.PowerForecast) (s2.ReceptionStatus, error)

	RevokePowerForecast(simulationID, forecastID s2.ID) (s2.ReceptionStatus, error)
	RevokePowerConstraints(simulationID, constraintsID s2.ID) (s2.ReceptionStatus, error)
	RevokeEnergyConstraints(simulationID, constraintsID s2.ID) (s2.ReceptionStatus, error)
	RevokePowerProfileDefinition(simulationID, definitionID s2.ID) (s2.ReceptionStatus, error)
	RevokeOMBCSystemDescription(simulationID, descriptionID s2.ID) (s2.ReceptionStatus, error)
	RevokeFRBCSystemDescription(simulationID, descriptionID s2.ID) (s2.ReceptionStatus, error)
	RevokeDDBCSystemDescription(simulationID, descriptionID s2.ID) (s2.ReceptionStatus, error)
	RevokeDemandRateForecast(simulationID, forecastID s2.ID) (s2.ReceptionStatus, error)
	RevokeLeakageBehaviour(simulationID s2.ID) (s2.ReceptionStatus, error)
	RevokeUsageForecast(simulationID s2.ID) (s2.ReceptionStatus, error)
	RevokeFillLevelTargetProfile(simulationID s2.ID) (s2.ReceptionStatus, error)
}

// notImplemented is the shared response of every UnimplementedController
// operation.
func notImplemented() (s2.ReceptionStatus, error) {
	return s2.Rejected("not implemented"), s2.ErrNotImplemented
}

// UnimplementedController rejects every operation with
// s2.ErrNotImplemented. Embed it in concrete controllers and override
// the operations the controller supports.
type UnimplementedController struct{}

var _ Controller = UnimplementedController{}

func (UnimplementedController) ProcessSimulationUpdate(s2.ID, SimulationUpdate) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) ProcessPowerMeasurement(s2.ID, s2.PowerMeasurement) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) ProcessPowerForecast(s2.ID, s2.ID, s2.PowerForecast) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) RevokePowerForecast(s2.ID, s2.ID) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) RevokePowerConstraints(s2.ID, s2.ID) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) RevokeEnergyConstraints(s2.ID, s2.ID) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) RevokePowerProfileDefinition(s2.ID, s2.ID) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) RevokeOMBCSystemDescription(s2.ID, s2.ID) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) RevokeFRBCSystemDescription(s2.ID, s2.ID) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) RevokeDDBCSystemDescription(s2.ID, s2.ID) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) RevokeDemandRateForecast(s2.ID, s2.ID) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) RevokeLeakageBehaviour(s2.ID) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) RevokeUsageForecast(s2.ID) (s2.ReceptionStatus, error) {
	return notImplemented()
}

func (UnimplementedController) RevokeFillLevelTargetProfile(s2.ID) (s2.ReceptionStatus, error) {
	return notImplemented()
}
