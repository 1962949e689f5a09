// File: smartcal/models/device.go
package models

import "time"

type Device struct {
	DeviceID   string    `bson:"deviceId" json:"deviceId"`
	DeviceName string    `bson:"deviceName" json:"deviceName"`
	LastLogin  time.Time `bson:"lastLogin" json:"lastLogin"`
	TokenHash  string    `bson:"tokenHash" json:"-"`
}
