/*
Package pillars is a small dice widget that reveals four fixed strategic pillars, one
roll at a time.

Each roll flickers through random die faces on an accelerating timer, then settles on a
face that is fully determined by the roll's position: the first roll always shows one pip
and reveals "Government", the second shows two and reveals "Donor", and so on. The random
faces are cosmetic and never influence the outcome.

# Usage

	w, err := pillars.New()
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()

	updates, unsubscribe, _ := w.Subscribe()
	defer unsubscribe()

	w.Activate() // roll for the first pillar
	for s := range updates {
		if !s.IsAnimating && s.ResultVisible {
			fmt.Println(s.History)
			break
		}
	}

The Widget serializes every event, so it is safe to call from any goroutine. Close must
be called when the hosting session ends: it cancels the pending tick so nothing fires
after teardown.
*/
package pillars
