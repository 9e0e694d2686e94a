package gpsd

// Report is one decoded report from the location-service stream. Only the
// two categories the collector merges are decoded; every other class is
// consumed and discarded by the session.
type Report interface {
	Class() string
}

// TPV is a position report. Every field is optional on the wire; a nil
// pointer means the daemon did not include it, which is distinct from zero.
type TPV struct {
	Mode  *int     `json:"mode"`
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
	Alt   *float64 `json:"alt"`
	Track *float64 `json:"track"`
	Speed *float64 `json:"speed"`
	Climb *float64 `json:"climb"`
	Ept   *float64 `json:"ept"`
	Epx   *float64 `json:"epx"`
	Epy   *float64 `json:"epy"`
	Epv   *float64 `json:"epv"`
	Epd   *float64 `json:"epd"`
	Eps   *float64 `json:"eps"`
	Epc   *float64 `json:"epc"`
}

func (*TPV) Class() string { return "TPV" }

// Satellite is one entry of a SKY report's satellite list.
type Satellite struct {
	GnssID *int     `json:"gnssid"`
	SvID   *int     `json:"svid"`
	SS     *float64 `json:"ss"`
	Az     *float64 `json:"az"`
	El     *float64 `json:"el"`
	Used   bool     `json:"used"`
}

// SKY is a sky report: dilution-of-precision scalars plus the visible
// satellite list. A nil Satellites slice means the report carried no list
// and is treated as not yet received.
type SKY struct {
	Xdop       *float64    `json:"xdop"`
	Ydop       *float64    `json:"ydop"`
	Vdop       *float64    `json:"vdop"`
	Hdop       *float64    `json:"hdop"`
	Gdop       *float64    `json:"gdop"`
	Tdop       *float64    `json:"tdop"`
	Pdop       *float64    `json:"pdop"`
	Satellites []Satellite `json:"satellites"`
}

func (*SKY) Class() string { return "SKY" }

// Session is an open report stream. NextReport returns the next decoded
// TPV or SKY report, ErrNoReport when nothing arrived within the poll
// window, ErrMalformedReport for an undecodable line (the stream stays
// usable), or a session error when the connection is gone.
type Session interface {
	NextReport() (Report, error)
	Close() error
}

// Dialer opens a session. The provider takes one so tests can substitute
// a synthetic report stream.
type Dialer func() (Session, error)
