//+build !release

package mocks

import "sync"

// FakeCron is a cron provider which runs jobs only when triggered.
type FakeCron struct {
	sync.Mutex

	nextID  int
	jobs    map[int]func()
	specs   map[int]string
	removed []int
	err     error
}

// AddFunc registers a job.
func (c *FakeCron) AddFunc(spec string, cmd func()) (int, error) {
	c.Lock()
	defer c.Unlock()

	if c.err != nil {
		return 0, c.err
	}

	c.nextID++
	c.jobs[c.nextID] = cmd
	c.specs[c.nextID] = spec
	return c.nextID, nil
}

// RemoveFunc unregisters a job.
func (c *FakeCron) RemoveFunc(id int) {
	c.Lock()
	defer c.Unlock()

	delete(c.jobs, id)
	delete(c.specs, id)
	c.removed = append(c.removed, id)
}

// Stop does nothing.
func (c *FakeCron) Stop() {
}

// Trigger runs all registered jobs synchronously.
func (c *FakeCron) Trigger() {
	c.Lock()
	jobs := make([]func(), 0, len(c.jobs))
	for _, v := range c.jobs {
		jobs = append(jobs, v)
	}
	c.Unlock()

	for _, v := range jobs {
		v()
	}
}

// Specs returns schedules of registered jobs.
func (c *FakeCron) Specs() []string {
	c.Lock()
	defer c.Unlock()

	specs := make([]string, 0, len(c.specs))
	for _, v := range c.specs {
		specs = append(specs, v)
	}

	return specs
}

// Jobs returns number of registered jobs.
func (c *FakeCron) Jobs() int {
	c.Lock()
	defer c.Unlock()
	return len(c.jobs)
}

// Removed returns ids of removed jobs.
func (c *FakeCron) Removed() []int {
	c.Lock()
	defer c.Unlock()
	return append([]int(nil), c.removed...)
}

// FakeNewCron creates a fake cron provider.
func FakeNewCron() *FakeCron {
	return &FakeCron{
		jobs:  make(map[int]func()),
		specs: make(map[int]string),
	}
}

// FakeNewFailingCron creates a fake cron provider which rejects all jobs.
func FakeNewFailingCron(err error) *FakeCron {
	c := FakeNewCron()
	c.err = err
	return c
}
