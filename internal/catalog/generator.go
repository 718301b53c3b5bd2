package catalog

// Upgrade is the ordered set of scripts a client at From must run to reach
// the generator's head.
type Upgrade struct {
	From      string
	IsRelease bool
	Scripts   []Script
}

// Catalog is the result of Generate: one Upgrade per requested source tag,
// in input order.
type Catalog struct {
	Upgrades []Upgrade
}

// Generate computes the upgrade catalog bringing every commit tagged in
// sourceTags up to head. sourceTags must already be in ascending catalog
// order (see PrepareTags); the caller is responsible for that ordering.
func Generate(graph CommitGraph, head int64, sourceTags []string) (*Catalog, error) {
	rawCommits, err := graph.Commits(head)
	if err != nil {
		return nil, &ErrStorageFailure{Op: "Commits", Err: err}
	}

	commits := make(map[int64]Commit, len(rawCommits))
	for _, c := range rawCommits {
		commits[c.ID] = c
	}

	type upgradePath struct {
		from     string
		commitID int64
	}

	paths := make([]upgradePath, 0, len(sourceTags))
	targets := make([]int64, 0, len(sourceTags))

	for _, tag := range sourceTags {
		id, err := graph.CommitOf(tag)
		if err != nil {
			return nil, err
		}

		paths = append(paths, upgradePath{from: tag, commitID: id})
		targets = append(targets, id)
	}

	shortest, err := ShortestPaths(commits, head, targets)
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{Upgrades: make([]Upgrade, 0, len(paths))}

	for _, p := range paths {
		base, err := DirectPath(commits, p.commitID)
		if err != nil {
			return nil, err
		}

		replayFrom := len(base)

		full := make([]int64, 0, len(base)+len(shortest[p.commitID]))
		full = append(full, base...)
		full = append(full, shortest[p.commitID][1:]...)

		engine := newReplayEngine(commits)
		if err := engine.run(full, replayFrom, len(full)); err != nil {
			return nil, err
		}

		scripts, err := accumulate(graph, engine.replay)
		if err != nil {
			return nil, err
		}

		catalog.Upgrades = append(catalog.Upgrades, Upgrade{
			From:      p.from,
			IsRelease: true,
			Scripts:   scripts,
		})
	}

	if n := len(catalog.Upgrades); n > 0 {
		catalog.Upgrades[n-1].IsRelease = false
	}

	return catalog, nil
}

// PrepareTags adds headLastTag to paths if absent and sorts the result
// with headLastTag as the maximum, matching the generator's assumption that
// its final element corresponds to head.
func PrepareTags(paths []string, headLastTag string) []string {
	found := false

	for _, p := range paths {
		if p == headLastTag {
			found = true
			break
		}
	}

	if !found && headLastTag != "" {
		paths = append(paths, headLastTag)
	}

	SortTags(paths, headLastTag)

	return paths
}
