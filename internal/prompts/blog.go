package prompts

// blogUserTemplate is the user-message template shared by the blog
// content families. Placeholders are substituted strictly at render time.
const blogUserTemplate = `Tema: {tema}
Palabras clave principales: {palabras_clave_primarias}
Palabras clave secundarias: {palabras_clave_secundarias}
Longitud: {longitud}
Público objetivo: {publico_objetivo}
Objetivo: {objetivo}
Tono específico: {tono_especifico}
Llamada a la acción: {llamada_accion}
Elementos a evitar: {elementos_evitar}

{comentarios_adicionales}
`

func generalInterestVariant() Variant {
	return Variant{
		Tag:    TagGeneralInterest,
		Family: FamilyBlog,
		Defaults: Config{
			RoleDescription:      "especialista en creación de contenidos para blogs, con experiencia en SEO y narración digital",
			ContentObjective:     "generar artículos completos, informativos y atractivos",
			StyleGuidance:        "Mantén un equilibrio entre profesional e informal según la temática. Usa una voz conversacional que genere conexión con el lector.",
			StructureDescription: "- Crea títulos atractivos que generen curiosidad y contengan palabras clave.\n- Incluye una introducción cautivadora que establezca el problema o tema.\n- Desarrolla secciones con subtítulos descriptivos y H2/H3 adecuados para SEO.\n- Incluye conclusiones que resuman los puntos clave y llamen a la acción.\n- Añade preguntas frecuentes cuando sea apropiado.",
			Tone:                 "Mantén un equilibrio entre profesional e informal según la temática. Usa una voz conversacional que genere conexión con el lector.",
			FormatGuide:          "- Utiliza párrafos cortos (3-4 líneas máximo) para mejorar la legibilidad.\n- Incorpora listas, viñetas y negritas para destacar información importante.\n- Incluye ejemplos prácticos y casos de estudio relevantes.\n- Sugiere imágenes o elementos visuales en puntos estratégicos.",
			SEOGuidelines:        "- Distribuye naturalmente palabras clave primarias y secundarias.\n- Genera metadescripciones atractivas de 150-160 caracteres.\n- Sugiere enlaces internos y externos relevantes.",
			Limitations:          "- No generes contenido falso o sin verificar.\n- No plagies contenido existente.\n- Evita jerga excesivamente técnica a menos que el público objetivo lo requiera.\n- Prioriza la calidad sobre la cantidad.",
		},
		UserTemplate: blogUserTemplate + "\nURLs de referencia para investigación adicional: {urls_referencia}\n",
		Fields:       blogFields,
	}
}

func successCaseVariant() Variant {
	return Variant{
		Tag:    TagSuccessCase,
		Family: FamilyBlog,
		Defaults: Config{
			RoleDescription:      "especialista en redacción de casos de éxito y storytelling empresarial",
			ContentObjective:     "crear artículos persuasivos que destaquen logros y resultados positivos de proyectos reales",
			StyleGuidance:        "Utiliza un estilo narrativo que muestre la transformación y los resultados obtenidos. Alterna datos duros con historias.",
			StructureDescription: "- Crea un título impactante que mencione el resultado principal o la empresa.\n- Comienza con un resumen ejecutivo de los logros.\n- Describe el desafío o problema inicial.\n- Explica la solución implementada.\n- Detalla los resultados con métricas específicas.\n- Incluye testimonios o citas (si están disponibles en el PDF).\n- Termina con lecciones aprendidas y una llamada a la acción.",
			Tone:                 "Profesional pero inspirador, enfocado en resultados y valor aportado",
			FormatGuide:          "- Utiliza párrafos cortos para mantener el interés.\n- Destaca cifras y porcentajes clave.\n- Incluye viñetas para listar beneficios.\n- Estructura clara con secciones bien definidas.\n- Sugiere dónde podrían incluirse imágenes de antes/después.",
			SEOGuidelines:        "- Incluye el nombre de la empresa/industria en el título y subtítulos.\n- Utiliza términos relacionados con resultados y soluciones.\n- Crea una meta descripción que resuma el logro principal.",
			Limitations:          "- No inventes datos o resultados no mencionados en el documento fuente.\n- No menciones información confidencial.\n- Equilibra hechos con narrativa.\n- No exageres los resultados.",
			AdditionalInstructions: "Genera DOS versiones del contenido: una versión corta (resumen ejecutivo de 150-200 palabras) y una versión completa detallada (800-1500 palabras). La versión corta debe capturar la esencia y los resultados principales.",
		},
		UserTemplate: blogUserTemplate + `
A continuación se proporciona información extraída de un PDF con detalles del caso de éxito.
Usa esta información como fuente principal para generar el artículo:

Información del caso de éxito:
{informacion_caso_exito}

Recuerda: Genera tanto una versión resumida como una versión completa del caso de éxito.
`,
		Fields: blogFields,
	}
}
