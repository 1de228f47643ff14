package utils

/*
	PartitionMap splits an index range over worker goroutines with a
	maximum imbalance of one item. Tendency passes shard the grid by
	j-row through one of these; every bucket is an independent slab
	because per-index operator evaluations share no state.
*/
type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree buckets
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of each bucket
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (min, max int) {
	min, max = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bucketNum int) (dim int) {
	var (
		min, max = pm.GetBucketRange(bucketNum)
	)
	dim = max - min
	return
}

// Split1D distributes MaxIndex over ParallelDegree buckets, spreading the
// remainder evenly over the first buckets.
func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	var (
		Npart            = pm.MaxIndex / pm.ParallelDegree
		remainder        = pm.MaxIndex % pm.ParallelDegree
		startAdd, endAdd int
	)
	if remainder != 0 {
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}
