package worker

// Settings exposes the resolved configuration of a worker to external tests.
func (w *Worker) Settings() (bucket string, embedBatchSize, insertBatchSize int, locked bool) {
	_, noop := w.locker.(noopLocker)
	return w.bucket, w.embedBatchSize, w.insertBatchSize, !noop
}
