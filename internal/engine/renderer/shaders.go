package renderer

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec2 vTexCoord;

void main() {
	vTexCoord = aTexCoord;
	gl_Position = uViewProj * uModel * vec4(aPosition, 1.0);
}
`

// Every material in the world is unlit: texel times base color.
const meshFragmentShader = `
#version 410 core

in vec2 vTexCoord;

uniform sampler2D uTexture;
uniform vec4 uColor;

out vec4 FragColor;

void main() {
	vec4 color = texture(uTexture, vTexCoord) * uColor;
	if (color.a < 0.01) {
		discard;
	}
	FragColor = color;
}
`

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec4 aColor;

uniform mat4 uViewProj;

out vec4 vColor;

void main() {
	vColor = aColor;
	gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`
