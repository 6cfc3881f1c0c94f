package score

// Candidates proposes hashtag candidates derived from the context itself:
// business identity, services, industry vocabulary, location tokens, and
// post-content keywords. Used when no generative backend is configured.
func Candidates(ctx Context) []string {
	var out []string
	seen := map[string]bool{}
	add := func(w string) {
		if len(w) < 3 || len(w) > 30 || seen[w] {
			return
		}
		seen[w] = true
		out = append(out, "#"+w)
	}

	add(squash(ctx.BusinessName))
	add(squash(ctx.BusinessType))
	for _, svc := range ctx.Services {
		add(squash(svc))
	}

	var city string
	for _, tok := range tokenize(ctx.Location) {
		if len(tok) > 2 {
			if city == "" {
				city = tok
			}
			add(tok)
		}
	}
	if city != "" {
		add(city + squash(ctx.BusinessType))
	}

	industry := ctx.Industry
	if industry == "" {
		industry = ctx.BusinessType
	}
	for _, kw := range industryKeywords(ctx.BusinessType) {
		add(kw)
	}
	for _, kw := range semanticKeywords(industry) {
		add(kw)
	}
	for _, kw := range extractKeywords(ctx.PostContent) {
		add(kw)
	}

	if len(out) > 20 {
		out = out[:20]
	}
	return out
}
