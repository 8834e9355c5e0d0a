package nmea

// TXT is a text transmission, typically receiver startup banners and
// warnings. Long texts are split over TotalMessages sentences.
type TXT struct {
	TotalMessages uint8
	MessageNumber uint8
	Level         MessageLevel
	Text          string
}

func (TXT) Code() string { return "TXT" }
func (TXT) isMessage()   {}

func init() {
	register("TXT", decodeTXT)
}

func decodeTXT(r *fieldReader) (m TXT, err error) {
	if m.TotalMessages, err = r.requiredUint8(); err != nil {
		return
	}
	if m.MessageNumber, err = r.requiredUint8(); err != nil {
		return
	}
	if m.Level, err = code(r, levelCodes); err != nil {
		return
	}
	m.Text, err = r.str()
	return
}
