package store

import "context"

// Seed populates the store with demonstration data: a handful of users and
// the referrals between them. Assumes a freshly Reset store.
func (s *Store) Seed(ctx context.Context) error {
	mulder, err := s.CreateUser(ctx, "Fox Mulder", "TRUSTNO1")
	if err != nil {
		return err
	}
	scully, err := s.CreateUser(ctx, "Dana Scully", "SCULLYMD")
	if err != nil {
		return err
	}
	skinner, err := s.CreateUser(ctx, "Walter Skinner", "SKINNERAD")
	if err != nil {
		return err
	}
	spender, err := s.CreateUser(ctx, "C.G.B. Spender", "CANCERMAN")
	if err != nil {
		return err
	}
	flukeman, err := s.CreateUser(ctx, "The Flukeman", "FLUKEMAN")
	if err != nil {
		return err
	}
	tooms, err := s.CreateUser(ctx, "Eugene Victor Tooms", "LIVERLVR")
	if err != nil {
		return err
	}
	mutato, err := s.CreateUser(ctx, "The Great Mutato", "CHERFAN")
	if err != nil {
		return err
	}
	betts, err := s.CreateUser(ctx, "Leonard Betts", "REGENERATE")
	if err != nil {
		return err
	}

	referrals := []struct {
		source uint
		target uint
		status string
	}{
		{spender.ID, skinner.ID, "confirmed"},
		{skinner.ID, mulder.ID, "confirmed"},
		{skinner.ID, scully.ID, "confirmed"},
		{mulder.ID, flukeman.ID, "confirmed"},
		{mulder.ID, tooms.ID, "confirmed"},
		{mulder.ID, mutato.ID, "pending"},
		{mulder.ID, betts.ID, "pending"},
	}

	for _, r := range referrals {
		if _, err := s.CreateReferral(ctx, r.source, r.target, r.status); err != nil {
			return err
		}
	}
	return nil
}
