package reference

// DefaultGroup collects endpoints without tags.
const DefaultGroup = "Other"

// GroupByTag groups endpoints by their first tag. The first occurrence
// of a tag fixes its position in the returned order, endpoints keep
// their relative order inside each group.
func GroupByTag(endpoints []*Endpoint) (groups map[string][]*Endpoint, order []string) {

	groups = map[string][]*Endpoint{}
	order = []string{}

	for _, endpoint := range endpoints {
		tag := DefaultGroup
		if len(endpoint.Tags) > 0 {
			tag = endpoint.Tags[0]
		}
		if _, exist := groups[tag]; !exist {
			order = append(order, tag)
		}
		groups[tag] = append(groups[tag], endpoint)
	}

	return groups, order
}
