package numerics

/* Coefficient tables for the quadrature rules and the Runge-Kutta methods. */

// 15-point Kronrod abscissae on [0, 1] (positive half, the rule is symmetric).
// Odd indices coincide with the nodes of the embedded 7-point Gauss rule.
var gk15Nodes = []float64{
	0.991455371120813,
	0.949107912342759,
	0.864864423359769,
	0.741531185599394,
	0.586087235467691,
	0.405845151377397,
	0.207784955007898,
	0.000000000000000,
}

// Kronrod weights matching gk15Nodes.
var gk15Weights = []float64{
	0.022935322010529,
	0.063092092629979,
	0.104790010322250,
	0.140653259715525,
	0.169004726639267,
	0.190350578064785,
	0.204432940075298,
	0.209482141084728,
}

// Gauss weights for the nodes at odd indices of gk15Nodes, last entry is the center.
var g7Weights = []float64{
	0.129484966168870,
	0.279705391489277,
	0.381830050505119,
	0.417959183673469,
}

// maxGLOrder is the highest Gauss-Legendre order with a stored table.
const maxGLOrder = 10

// Gauss-Legendre abscissae on [-1, 1] per order. Index zero is unused so that
// glNodes[n] is the table for order n.
var glNodes = [maxGLOrder + 1][]float64{
	1: {0},
	2: {-0.5773502691896257, 0.5773502691896257},
	3: {-0.7745966692414834, 0, 0.7745966692414834},
	4: {-0.8611363115940526, -0.3399810435848563, 0.3399810435848563, 0.8611363115940526},
	5: {-0.9061798459386640, -0.5384693101056831, 0, 0.5384693101056831, 0.9061798459386640},
	6: {-0.9324695142031521, -0.6612093864662645, -0.2386191860831969,
		0.2386191860831969, 0.6612093864662645, 0.9324695142031521},
	7: {-0.9491079123427585, -0.7415311855993945, -0.4058451513773972, 0,
		0.4058451513773972, 0.7415311855993945, 0.9491079123427585},
	8: {-0.9602898564975363, -0.7966664774136267, -0.5255324099163290, -0.1834346424956498,
		0.1834346424956498, 0.5255324099163290, 0.7966664774136267, 0.9602898564975363},
	9: {-0.9681602395076261, -0.8360311073266358, -0.6133714327005904, -0.3242534234038089, 0,
		0.3242534234038089, 0.6133714327005904, 0.8360311073266358, 0.9681602395076261},
	10: {-0.9739065285171717, -0.8650633666889845, -0.6794095682990244, -0.4333953941292472, -0.1488743389816312,
		0.1488743389816312, 0.4333953941292472, 0.6794095682990244, 0.8650633666889845, 0.9739065285171717},
}

var glWeights = [maxGLOrder + 1][]float64{
	1: {2},
	2: {1, 1},
	3: {0.5555555555555556, 0.8888888888888888, 0.5555555555555556},
	4: {0.3478548451374538, 0.6521451548625461, 0.6521451548625461, 0.3478548451374538},
	5: {0.2369268850561891, 0.4786286704993665, 0.5688888888888889, 0.4786286704993665, 0.2369268850561891},
	6: {0.1713244923791704, 0.3607615730481386, 0.4679139345726910,
		0.4679139345726910, 0.3607615730481386, 0.1713244923791704},
	7: {0.1294849661688697, 0.2797053914892766, 0.3818300505051189, 0.4179591836734694,
		0.3818300505051189, 0.2797053914892766, 0.1294849661688697},
	8: {0.1012285362903763, 0.2223810344533745, 0.3137066458778873, 0.3626837833783620,
		0.3626837833783620, 0.3137066458778873, 0.2223810344533745, 0.1012285362903763},
	9: {0.0812743883615744, 0.1806481606948574, 0.2606106964029354, 0.3123470770400029, 0.3302393550012598,
		0.3123470770400029, 0.2606106964029354, 0.1806481606948574, 0.0812743883615744},
	10: {0.0666713443086881, 0.1494513491505806, 0.2190863625159820, 0.2692667193099963, 0.2955242247147529,
		0.2955242247147529, 0.2692667193099963, 0.2190863625159820, 0.1494513491505806, 0.0666713443086881},
}

// Tableau holds the Butcher coefficients of a Runge-Kutta method. Row i of A
// has exactly i entries. E holds the difference between the weights of the two
// embedded orders and is nil for methods without an error estimate.
type Tableau struct {
	A       [][]float64
	B, C, E []float64
	Order   int
	// ErrExp is the step growth exponent 1/(errorOrder+1).
	ErrExp float64
}

// Stages returns the number of stage evaluations of the method.
func (tab Tableau) Stages() int {
	return len(tab.B)
}

// Classical fourth-order Runge-Kutta, fixed step only.
var rk4Tableau = Tableau{
	A: [][]float64{
		{},
		{1. / 2},
		{0, 1. / 2},
		{0, 0, 1},
	},
	C:     []float64{0, 1. / 2, 1. / 2, 1},
	B:     []float64{1. / 6, 1. / 3, 1. / 3, 1. / 6},
	Order: 4,
}

// Bogacki-Shampine 3(2) embedded pair.
var rk23Tableau = Tableau{
	A: [][]float64{
		{},
		{1. / 2},
		{0, 3. / 4},
		{2. / 9, 1. / 3, 4. / 9},
	},
	C: []float64{0, 1. / 2, 3. / 4, 1},
	B: []float64{2. / 9, 1. / 3, 4. / 9, 0},
	// Third-order weights minus the second-order ones.
	E:      []float64{-5. / 72, 1. / 12, 1. / 9, -1. / 8},
	Order:  3,
	ErrExp: 1. / 3,
}

// Dormand-Prince 5(4) embedded pair.
var rk45Tableau = Tableau{
	A: [][]float64{
		{},
		{1. / 5},
		{3. / 40, 9. / 40},
		{44. / 45, -56. / 15, 32. / 9},
		{19372. / 6561, -25360. / 2187, 64448. / 6561, -212. / 729},
		{9017. / 3168, -355. / 33, 46732. / 5247, 49. / 176, -5103. / 18656},
		{35. / 384, 0, 500. / 1113, 125. / 192, -2187. / 6784, 11. / 84},
	},
	C: []float64{0, 1. / 5, 3. / 10, 4. / 5, 8. / 9, 1, 1},
	B: []float64{35. / 384, 0, 500. / 1113, 125. / 192, -2187. / 6784, 11. / 84, 0},
	// Fifth-order weights minus the fourth-order ones.
	E:      []float64{71. / 57600, 0, -71. / 16695, 71. / 1920, -17253. / 339200, 22. / 525, -1. / 40},
	Order:  5,
	ErrExp: 1. / 5,
}
