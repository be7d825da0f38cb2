package models

// WeatherReport is the current-conditions snapshot shown next to a property.
// Failures are carried in Error rather than returned as a Go error so the
// presentation layer can always render something.
type WeatherReport struct {
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	WindSpeed   float64 `json:"wind_speed"`
	CityName    string  `json:"city_name"`
	Error       string  `json:"error,omitempty"`
}

// OK reports whether the lookup succeeded.
func (w WeatherReport) OK() bool { return w.Error == "" }
