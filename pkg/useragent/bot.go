package useragent

// lookupBot returns the first bot rule matching ua, or nil.
func (c *corpus) lookupBot(ua string) (*Bot, error) {
	for _, r := range c.bots {
		ok, err := r.re.MatchString(ua)
		if err != nil {
			return nil, err
		}
		if ok {
			return r.bot.clone().(*Bot), nil
		}
	}
	return nil, nil
}
