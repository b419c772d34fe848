package workspace

type recordingObserver struct {
	visited  []string
	total    int
	finished bool
}

func (o *recordingObserver) Begin(total int)        { o.total = total }
func (o *recordingObserver) Advance(relPath string) { o.visited = append(o.visited, relPath) }
func (o *recordingObserver) Finish()                { o.finished = true }
