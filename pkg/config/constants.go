package config

const (
	ThermalZonePath   = "/sys/class/thermal/thermal_zone0/temp"
	AudioHwParamsPath = "/proc/asound/card1/pcm0p/sub0/hw_params"
	EthernetInterface = "eth0"
	WirelessInterface = "wlan0"
	ThermalReadLimit  = 32
	AudioReadLimit    = 150
	PanelWidth        = 84
	PanelHeight       = 48
	PanelColumns      = 14
	PanelRows         = 6
	BytesPerMegabyte  = 1024 * 1024
	LoadScale         = 1000
	MilliCelsiusScale = 1000.0
	SecondsPerMinute  = 60
	Banner            = "Raspberry Pi PCD8544 sysinfo display"
)
