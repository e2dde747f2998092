package dataset

// Record is one observed drop: where the ball was released, how it bounced and which box it fell into.
// Only DropWidth and BoxLabel take part in predictions.
type Record struct {
	DropWidth  float64 `json:"dropWidth" toml:"drop_width"`
	Elasticity float64 `json:"elasticity" toml:"elasticity"`
	BallRadius float64 `json:"ballRadius" toml:"ball_radius"`
	BoxLabel   int     `json:"boxLabel" toml:"box_label"`
}

type Dataset []Record

func (d Dataset) Len() int {
	return len(d)
}

// Copy returns a dataset that does not share storage with d.
func (d Dataset) Copy() Dataset {
	d1 := make(Dataset, len(d))
	copy(d1, d)
	return d1
}

// Labels counts records per box label.
func (d Dataset) Labels() map[int]int {
	labels := make(map[int]int)
	for i := range d {
		labels[d[i].BoxLabel]++
	}
	return labels
}

// Reference is the sample collected from the plinko simulation.
func Reference() Dataset {
	return Dataset{
		{DropWidth: 10, Elasticity: 0.5, BallRadius: 16, BoxLabel: 1},
		{DropWidth: 200, Elasticity: 0.5, BallRadius: 16, BoxLabel: 4},
		{DropWidth: 400, Elasticity: 0.5, BallRadius: 16, BoxLabel: 4},
		{DropWidth: 400, Elasticity: 0.5, BallRadius: 16, BoxLabel: 4},
	}
}
