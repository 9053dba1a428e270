// Package analysis looks at an epicycle from the frequency side.
//
// The tip's x coordinate is cos(t) + cos(r·t), so its spectrum has one peak
// at angular frequency 1 (the primary orbit) and one at |r| (the secondary):
//
//	xs := analysis.SampleTip(math.Pi, 4096, 0.05)
//	peaks := analysis.Peaks(analysis.MagnitudeSpectrum(xs), 0.05, 2)
//	// peaks[0].Frequency and peaks[1].Frequency are close to 1 and π
package analysis
