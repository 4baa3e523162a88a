package datagen

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// CLV 采用 Gamma(shape=2, scale=50) 分布，均值约 100
const (
	clvShape = 2.0
	clvScale = 50.0
)

// Rand 可注入的确定性随机源。所有生成器共用同一个流，
// 固定种子下两次运行的输出逐字段一致。
type Rand struct {
	*rand.Rand
	clv distuv.Gamma
}

// NewRand 以给定种子创建随机源
func NewRand(seed uint64) *Rand {
	src := rand.NewPCG(seed, seed)
	return &Rand{
		Rand: rand.New(src),
		clv:  distuv.Gamma{Alpha: clvShape, Beta: 1.0 / clvScale, Src: src},
	}
}

// FloatRange 返回 [min, max) 区间的均匀浮点数
func (r *Rand) FloatRange(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// IntRange 返回 [min, max] 闭区间的均匀整数
func (r *Rand) IntRange(min, max int) int {
	return min + r.IntN(max-min+1)
}

// Weighted 按权重向量抽取下标。权重只要求比例正确，
// 抽样前统一做和归一化。
func (r *Rand) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	x := r.Float64() * total
	for i, w := range weights {
		x -= w
		if x < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// CLV 采样一条客户生命周期价值，保留 2 位小数
func (r *Rand) CLV() float64 {
	return Round2(r.clv.Rand())
}

// DateBetween 返回 [start, end] 之间按天均匀分布的日期
func (r *Rand) DateBetween(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, r.IntN(days+1))
}

// Pick 从池中均匀取一个元素
func Pick[T any](r *Rand, pool []T) T {
	return pool[r.IntN(len(pool))]
}

// Round2 保留 2 位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NormalizeWeights 将权重向量归一化为概率分布
func NormalizeWeights(weights []float64) []float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	out := make([]float64, len(weights))
	if total == 0 {
		return out
	}
	for i, w := range weights {
		out[i] = w / total
	}
	return out
}
