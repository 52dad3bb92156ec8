package facemask

// BuildJob represents a batch of face crops for one build worker.
type BuildJob struct {
	files []BuildFile
	opt   BuildOptions
	build *Build
}

// BuildWorker processes build jobs until the channel is closed.
func BuildWorker(jobs <-chan BuildJob) {
	for job := range jobs {
		switch {
		case job.build == nil:
			continue
		case len(job.files) == 0:
			continue
		}

		job.build.addResult(job.build.BuildFiles(job.files, job.opt))
	}
}
