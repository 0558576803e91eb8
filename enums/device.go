package enums

type Device string

const (
	DevicePC Device = "pc"
	DeviceMO Device = "mo"
)

// Devices lists every tracked device, in upsert order.
var Devices = []Device{DevicePC, DeviceMO}
