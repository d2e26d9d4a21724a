package doccluster

import "strings"

// englishStopwordList is a compact English function-word list applied when
// stopword removal is active. It follows the usual short lists shipped by
// text-processing toolkits; domain-specific additions go through
// VectorizerConfig.ExtraStopwords.
const englishStopwordList = `
a about above after again against all am an and any are as at
be because been before being below between both but by
can cannot could
did do does doing down during
each
few for from further
had has have having he her here hers herself him himself his how
i if in into is it its itself
just
me more most my myself
no nor not now
of off on once only or other our ours ourselves out over own
same she should so some such
than that the their theirs them themselves then there these they this
those through to too
under until up
very
was we were what when where which while who whom why will with would
you your yours yourself yourselves
`

func stopwordSet(extra []string) map[string]struct{} {
	words := strings.Fields(englishStopwordList)
	set := make(map[string]struct{}, len(words)+len(extra))
	for _, w := range words {
		set[w] = struct{}{}
	}
	for _, w := range extra {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
