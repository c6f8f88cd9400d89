package types

// BandEnergies holds the per-frame normalized energy of the four frequency
// bands, each in [0,1].
type BandEnergies struct {
	Bass    float64
	LowMid  float64
	HighMid float64
	Treble  float64
}

// FeatureFrame is the per-update reduction of a live frequency snapshot.
// All values are recomputed every animation frame; the smoothed members
// (envelopes, impulses) carry state owned by the extractor across frames.
type FeatureFrame struct {
	Bands          BandEnergies
	BassEnvelope   float64 // Smoothed bass energy, in [0,1].
	TrebleEnvelope float64 // Smoothed treble energy, in [0,1].
	BassHit        float64 // Fast-attack slow-decay transient detector, in [0,~1.35].
	MidPulse       float64 // Percussive low-mid pulse, in [0,~1.5].
	Loudness       float64 // Unweighted mean of the four bands, in [0,1].
}

// FeatureExtractor reduces frequency snapshots into FeatureFrames. It is the
// only stateful stage of the audio path; Reset clears the smoothing state.
type FeatureExtractor interface {
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)

	// Update folds one frequency snapshot (bins in 0..255) into a frame.
	// sensitivity is the UI sensitivity scalar in [0,1]; dt is the measured
	// inter-frame delta in seconds, clamped internally so variable frame
	// timing cannot destabilize the smoothing.
	Update(bins []byte, sensitivity, dt float64) FeatureFrame
	Reset()
}

// AudioSource is the capability exposed by the decode/playback collaborator.
// The library treats it as already-decoded; decode failures are its concern.
type AudioSource interface {
	// FrequencySnapshot fills dst with the live frequency-domain magnitudes
	// (one byte per bin, 0..255) and returns the number of bins written.
	FrequencySnapshot(dst []byte) int
	// ChannelData returns the decoded samples of the first channel.
	ChannelData() []float64
	// Duration returns the audio duration in seconds.
	Duration() float64
}
