package service

// reconcileImages computes a project's final image list and the set of
// now-orphaned images. Pure; all uploads have already happened by the time
// this runs.
//
// keepProvided=false means the client stated no preference: every previous
// image is retained. keepProvided=true with an empty keep list (after
// dropping empty strings) means "discard all existing images". The final
// list is the de-duplicated keep list in its own order, followed by the
// newly uploaded URLs in upload order. toDelete is previous minus final.
func reconcileImages(previous, keep []string, keepProvided bool, uploaded []string) (final, toDelete []string) {
	if !keepProvided {
		keep = previous
	}

	final = make([]string, 0, len(keep)+len(uploaded))
	seen := make(map[string]struct{}, len(keep))
	for _, u := range keep {
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		final = append(final, u)
	}
	final = append(final, uploaded...)

	retained := make(map[string]struct{}, len(final))
	for _, u := range final {
		retained[u] = struct{}{}
	}

	toDelete = make([]string, 0)
	for _, u := range previous {
		if _, ok := retained[u]; ok {
			continue
		}
		retained[u] = struct{}{} // delete each orphan once
		toDelete = append(toDelete, u)
	}
	return final, toDelete
}
