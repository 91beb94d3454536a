package tui

// OneOf accepts the values for which known returns true.
func OneOf(known func(string) bool, err error) ValidateFunc {
	return func(s string) error {
		if known(s) {
			return nil
		}
		return err
	}
}

// NonEmpty accepts any non-empty input.
func NonEmpty(err error) ValidateFunc {
	return func(s string) error {
		if s == "" {
			return err
		}
		return nil
	}
}
