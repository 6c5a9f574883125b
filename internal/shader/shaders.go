package shader

// Embedded GLSL for the standard scene program. One program renders every object;
// bUseTexture switches between sampling objectTexture and the flat objectColor,
// and bUseLighting gates the four-light Phong term.
const (
	vertexSource = `#version 330 core
in vec3 vertexPosition;
in vec3 vertexNormal;
in vec2 vertexUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragmentPosition;
out vec3 fragmentNormal;
out vec2 fragmentUV;

void main() {
  vec4 worldPos = model * vec4(vertexPosition, 1.0);
  fragmentPosition = worldPos.xyz;
  // Normal matrix: inverse-transpose of the model's upper 3x3 so non-uniform
  // scale does not skew normals.
  fragmentNormal = mat3(transpose(inverse(model))) * vertexNormal;
  fragmentUV = vertexUV;
  gl_Position = projection * view * worldPos;
}
`

	fragmentSource = `#version 330 core
in vec3 fragmentPosition;
in vec3 fragmentNormal;
in vec2 fragmentUV;

struct Material {
  vec3 ambientColor;
  float ambientStrength;
  vec3 diffuseColor;
  vec3 specularColor;
  float shininess;
};

struct LightSource {
  vec3 position;
  vec3 ambientColor;
  vec3 diffuseColor;
  vec3 specularColor;
  float focalStrength;
  float specularIntensity;
};

#define TOTAL_LIGHTS 4

uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform LightSource lightSources[TOTAL_LIGHTS];

out vec4 fragmentColor;

vec3 shade(LightSource light, vec3 baseColor, vec3 normal, vec3 viewDir) {
  vec3 ambient = light.ambientColor * material.ambientStrength * material.ambientColor;

  vec3 lightDir = normalize(light.position - fragmentPosition);
  float diff = max(dot(normal, lightDir), 0.0);
  vec3 diffuse = diff * light.diffuseColor * material.diffuseColor;

  vec3 reflectDir = reflect(-lightDir, normal);
  float spec = pow(max(dot(viewDir, reflectDir), 0.0), light.focalStrength * material.shininess);
  vec3 specular = light.specularIntensity * spec * light.specularColor * material.specularColor;

  return (ambient + diffuse + specular) * baseColor;
}

void main() {
  vec4 base;
  if (bUseTexture) {
    base = texture(objectTexture, fragmentUV * UVscale);
  } else {
    base = objectColor;
  }

  if (!bUseLighting) {
    fragmentColor = base;
    return;
  }

  vec3 normal = normalize(fragmentNormal);
  vec3 viewDir = normalize(viewPosition - fragmentPosition);
  vec3 lit = vec3(0.0);
  for (int i = 0; i < TOTAL_LIGHTS; i++) {
    lit += shade(lightSources[i], base.rgb, normal, viewDir);
  }
  fragmentColor = vec4(lit, base.a);
}
`
)
