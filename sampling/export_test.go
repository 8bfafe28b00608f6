package sampling

var Noise = noise
