/* 예측 모델 입력용 피처 벡터 생성 */

package features

import (
	"fmt"
	"math"
)

// 모델이 학습된 지역 코드 (순서 고정, 변경 금지)
type Region int

const (
	Northeast Region = iota
	Northwest
	Southeast
	Southwest
)

var regionNames = map[string]Region{
	"Northeast": Northeast,
	"Northwest": Northwest,
	"Southeast": Southeast,
	"Southwest": Southwest,
}

// 지역명 → 코드 변환, 정의된 4개 지역 외에는 전부 에러
func ParseRegion(name string) (Region, error) {
	region, exists := regionNames[name]
	if !exists {
		return 0, fmt.Errorf("unknown region: %q", name)
	}
	return region, nil
}

func (r Region) String() string {
	switch r {
	case Northeast:
		return "Northeast"
	case Northwest:
		return "Northwest"
	case Southeast:
		return "Southeast"
	case Southwest:
		return "Southwest"
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// 한 번의 예측 요청에 입력되는 수혜자 정보
type Intake struct {
	Age      int
	Male     bool
	HeightCM float64 // 100~250
	WeightKG float64 // 30~200
	Children int     // 0~5
	Smoker   bool
	Region   Region
}

// 모델 학습 당시의 입력 순서: [age, sex, bmi, children, smoker, region]
type Vector [6]float64

// BMI = weight / (height/100)^2, 소수점 2자리 반올림 (half-up)
func BMI(heightCM, weightKG float64) float64 {
	heightM := heightCM / 100
	return Round2(weightKG / (heightM * heightM))
}

// 소수점 2자리 반올림. math.Round는 0에서 멀어지는 방향이라
// 양수 입력에서는 half-up과 동일함
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Intake → 피처 벡터 변환. 순수 함수이며 같은 입력은 항상 같은 벡터를 반환
func Derive(in Intake) Vector {
	var v Vector
	v[0] = float64(in.Age)
	if in.Male {
		v[1] = 1
	}
	v[2] = BMI(in.HeightCM, in.WeightKG)
	v[3] = float64(in.Children)
	if in.Smoker {
		v[4] = 1
	}
	v[5] = float64(in.Region)
	return v
}
