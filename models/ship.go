// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Ship is a vessel record as published by the API.
//
// ShipLength is kept as text because the source data carries the unit
// together with the value.
type Ship struct {
	ID               int64  `json:"id"`
	ShipName         string `json:"ship_name"`
	ShipCountry      string `json:"ship_country"`
	ShipType         string `json:"ship_type"`
	ShipLength       string `json:"ship_length"`
	ShipIMO          string `json:"ship_imo"`
	ShipStatus       string `json:"ship_status"`
	ShipMMSICallsign string `json:"ship_mmsi_callsign"`
	ShipCurrentPort  string `json:"ship_current_port"`
}

// TableName returns the name of the database table
// associated with the Ship model.
func (s Ship) TableName() string {
	return "ships"
}
