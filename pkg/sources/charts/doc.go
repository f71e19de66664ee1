// Package charts provides decorative chart sources computed offline and
// published as quickchart.io image URLs.
//
//   - lorenz: the x/z projection of a Lorenz attractor trajectory,
//     integrated with classical fourth-order Runge-Kutta
//   - wave: a partial Fourier series of a square wave whose phase advances
//     with the clock, so the picture changes from run to run
//
// Neither source touches the network; only the README reader's browser
// fetches the rendered image.
package charts
