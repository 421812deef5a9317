// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Port is a seaport together with its vessel traffic statistics.
type Port struct {
	ID                int64  `json:"id"`
	PortName          string `json:"port_name"`
	PortLocode        string `json:"port_locode"`
	PortMaxVesselSize string `json:"port_max_vessel_size"`
	PortTotalShips    int64  `json:"port_total_ships"`
	PortCountry       string `json:"port_country"`

	// PortUsage is the 1:1 usage row of the port. It is nil (serialized as
	// null) when no usage row references the port.
	PortUsage *PortUsage `json:"port_usage"`
}

// TableName returns the name of the database table
// associated with the Port model.
func (p Port) TableName() string {
	return "ports"
}

// PortUsage holds per-category vessel counts observed in a port.
type PortUsage struct {
	ID                       int64 `json:"id"`
	CargoVessels             int64 `json:"cargo_vessels"`
	FishingVessels           int64 `json:"fishing_vessels"`
	VariousVessels           int64 `json:"various_vessels"`
	TankerVessels            int64 `json:"tanker_vessels"`
	TugOffshoreSupplyVessels int64 `json:"tug_offshore_supply_vessels"`
	PassengerVessels         int64 `json:"passenger_vessels"`
	AuthorityMilitaryVessels int64 `json:"authority_military_vessels"`
	SailingVessels           int64 `json:"sailing_vessels"`
	AidToNavVessels          int64 `json:"aid_to_nav_vessels"`
	PortID                   int64 `json:"port_id"`
}

// TableName returns the name of the database table
// associated with the PortUsage model.
func (u PortUsage) TableName() string {
	return "port_usage"
}
