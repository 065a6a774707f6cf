package prompts

// linkedinUserTemplate is the base user-message template for LinkedIn
// posts. Each style appends its own closing directive.
const linkedinUserTemplate = `Tema: {tema}

Información adicional: {informacion_adicional}

`

func baseLinkedInVariant() Variant {
	return Variant{
		Tag:    TagLinkedInBase,
		Family: FamilyLinkedIn,
		Defaults: Config{
			RoleDescription:      "especialista en creación de contenido para LinkedIn",
			ContentObjective:     "generar publicaciones profesionales con alto engagement",
			StyleGuidance:        "Profesional pero conversacional, incluye emojis estratégicamente",
			StructureDescription: "Utiliza párrafos cortos, llamada a la acción al final",
			Tone:                 "Profesional con toque personal y conversacional",
			FormatGuide:          "- Párrafos cortos (1-3 líneas máximo)\n- Utiliza espacios entre párrafos\n- Incluye emojis relevantes\n- Considera usar líneas para separar secciones\n- Usa hashtags relevantes al final",
			EngagementTips:       "- Comienza con una pregunta o dato sorprendente\n- Cuenta una historia personal o profesional breve\n- Incluye una reflexión que inspire a comentar\n- Termina con una llamada a la acción clara",
			Limitations:          "- Evita contenido excesivamente promocional\n- No uses más de 3-4 hashtags\n- Evita textos demasiado largos\n- No uses jerga excesivamente técnica",
		},
		UserTemplate: linkedinUserTemplate + "Genera un post de LinkedIn profesional sobre el tema indicado.\n",
		Fields:       linkedinFields,
	}
}

func leadershipVariant() Variant {
	return Variant{
		Tag:    TagLeadership,
		Family: FamilyLinkedIn,
		Defaults: Config{
			RoleDescription:        "líder visionario y estratega empresarial",
			ContentObjective:       "compartir perspectivas estratégicas que inspiren a otros líderes",
			StyleGuidance:          "Visionario, inspirador y orientado a resultados",
			StructureDescription:   "- Comienza con una reflexión profunda o lección aprendida\n- Desarrolla una idea estratégica clave\n- Comparte perspectivas que desafíen el pensamiento convencional\n- Termina con una pregunta reflexiva o llamada a la acción inspiradora",
			Tone:                   "Autoritativo pero accesible, con enfoque en el valor estratégico",
			FormatGuide:            "- Párrafos concisos y poderosos\n- Utiliza una o dos frases impactantes\n- Incluye una metáfora o analogía potente\n- Un emoji estratégicamente colocado puede añadir personalidad",
			EngagementTips:         "- Comparte una lección de liderazgo personal\n- Menciona un desafío superado\n- Habla de tendencias futuras en tu industria\n- Pide opiniones sobre enfoques estratégicos",
			AdditionalInstructions: "Muestra confianza y visión sin arrogancia. Mantén un balance entre sabiduría compartida y humildad.",
		},
		UserTemplate: linkedinUserTemplate + "Genera un post de LinkedIn con enfoque de liderazgo que inspire y transmita una visión estratégica sobre el tema. \nIncorpora alguna reflexión sobre responsabilidad, visión o impacto en la industria.\n",
		Fields:       linkedinFields,
	}
}

func behindTheScenesVariant() Variant {
	return Variant{
		Tag:    TagBehindTheScenes,
		Family: FamilyLinkedIn,
		Defaults: Config{
			RoleDescription:        "líder transparente que comparte el día a día empresarial",
			ContentObjective:       "humanizar la marca mostrando los procesos internos y el trabajo cotidiano",
			StyleGuidance:          "Auténtico, cercano y revelador, mostrando aspectos normalmente no visibles",
			StructureDescription:   "- Comienza contextualizando la situación o momento\n- Describe el proceso o la situación interna\n- Comparte aprendizajes o reflexiones personales\n- Conecta con valores o misión de la empresa\n- Termina con una nota personal o pregunta",
			Tone:                   "Conversacional, honesto y transparente",
			FormatGuide:            "- Estilo narrativo y personal\n- Usa primera persona\n- Incluye detalles específicos que den autenticidad\n- Emojis que transmitan emociones reales\n- Considera mencionar a miembros del equipo",
			EngagementTips:         "- Comparte un desafío y cómo se superó\n- Muestra el antes/después de un proceso\n- Habla sobre errores y aprendizajes\n- Pide opiniones sobre decisiones o enfoques",
			AdditionalInstructions: "Busca el balance entre transparencia y profesionalismo. Muestra vulnerabilidad pero mantén una imagen de competencia.",
		},
		UserTemplate: linkedinUserTemplate + "Genera un post de LinkedIn que muestre el \"detrás de escena\" relacionado con el tema. \nRevela procesos internos, desafíos cotidianos o momentos no visibles habitualmente, creando una sensación de acceso privilegiado.\n",
		Fields:       linkedinFields,
	}
}

func winsVariant() Variant {
	return Variant{
		Tag:    TagWins,
		Family: FamilyLinkedIn,
		Defaults: Config{
			RoleDescription:        "líder que celebra logros y reconoce contribuciones",
			ContentObjective:       "compartir y celebrar éxitos, hitos y reconocimientos de manera inspiradora",
			StyleGuidance:          "Celebratorio, orgulloso pero humilde, enfocado en el impacto",
			StructureDescription:   "- Anuncia el logro o reconocimiento claramente\n- Proporciona contexto sobre su importancia\n- Reconoce a las personas involucradas\n- Comparte lecciones o factores de éxito\n- Expresa gratitud y proyecta hacia el futuro",
			Tone:                   "Entusiasta, genuinamente orgulloso y agradecido",
			FormatGuide:            "- Frases contundentes y celebratorias\n- Usa emojis festivos estratégicamente\n- Incluye números o métricas cuando sea relevante\n- Considera mencionar y etiquetar a personas clave\n- Usa signos de exclamación con moderación",
			EngagementTips:         "- Comparte el camino hacia el logro, no solo el resultado\n- Menciona obstáculos superados\n- Expresa gratitud específica\n- Invita a otros a compartir sus propios éxitos",
			AdditionalInstructions: "Equilibra la celebración con humildad. Destaca los logros sin parecer presumido, y siempre reconoce el esfuerzo colectivo.",
		},
		UserTemplate: linkedinUserTemplate + "Genera un post de LinkedIn que celebre un logro, hito o reconocimiento relacionado con el tema. \nExpresa orgullo por el resultado alcanzado mientras reconoces el esfuerzo y las contribuciones que lo hicieron posible.\n",
		Fields:       linkedinFields,
	}
}

func ceoJourneyVariant() Variant {
	return Variant{
		Tag:    TagCEOJourney,
		Family: FamilyLinkedIn,
		Defaults: Config{
			RoleDescription:        "CEO que comparte su trayectoria y experiencias de liderazgo",
			ContentObjective:       "narrar experiencias personales de liderazgo que inspiren y eduquen",
			StyleGuidance:          "Narrativo, reflexivo y personal, con enfoque en el crecimiento",
			StructureDescription:   "- Comienza con un momento decisivo o desafiante\n- Narra la experiencia o lección aprendida\n- Reflexiona sobre el impacto en tu liderazgo\n- Conecta con principios o valores\n- Comparte una conclusión o consejo derivado",
			Tone:                   "Auténtico, reflexivo y vulnerable pero seguro",
			FormatGuide:            "- Estilo narrativo con arco claro\n- Primera persona y lenguaje personal\n- Incluye detalles específicos que den autenticidad\n- Considera usar una estructura temporal (antes/después)\n- Emojis que transmitan emociones genuinas",
			EngagementTips:         "- Comparte un fracaso y cómo te transformó\n- Menciona mentores o influencias clave\n- Describe un momento de duda o pivot\n- Pregunta por experiencias similares",
			AdditionalInstructions: "Muestra vulnerabilidad auténtica balanceada con resiliencia. El objetivo es inspirar mostrando tanto los desafíos como las superaciones.",
		},
		UserTemplate: linkedinUserTemplate + "Genera un post de LinkedIn que relate una experiencia personal de liderazgo relacionada con el tema.\nNarra un momento significativo de tu trayectoria como CEO, compartiendo lecciones y reflexiones personales.\n",
		Fields:       linkedinFields,
	}
}

func hotTakesVariant() Variant {
	return Variant{
		Tag:    TagHotTakes,
		Family: FamilyLinkedIn,
		Defaults: Config{
			RoleDescription:        "líder de opinión que desafía el pensamiento convencional",
			ContentObjective:       "presentar perspectivas contraintuitivas o disruptivas que generen debate",
			StyleGuidance:          "Provocativo, disruptivo y desafiante, pero fundamentado",
			StructureDescription:   "- Comienza con una afirmación contundente y sorprendente\n- Desafía una creencia o práctica establecida\n- Argumenta tu posición con ejemplos o lógica\n- Anticipa y responde a potenciales objeciones\n- Invita al debate con una pregunta o reto",
			Tone:                   "Asertivo, seguro y ligeramente provocador",
			FormatGuide:            "- Frases cortas e impactantes\n- Usa párrafos concisos\n- Incluye al menos una afirmación controversial\n- Considera usar formato numerado para puntos clave\n- Limita los emojis para mantener seriedad",
			EngagementTips:         "- Cuestiona una práctica común en la industria\n- Contradice una 'verdad' aceptada\n- Usa frases como '¿Impopular opinión?'\n- Termina con '¿Estás de acuerdo o en desacuerdo?'",
			AdditionalInstructions: "Sé provocativo pero siempre mantén el profesionalismo. No seas controversial solo por serlo; asegúrate de tener argumentos sólidos detrás de tus afirmaciones.",
		},
		UserTemplate: linkedinUserTemplate + "Genera un post de LinkedIn con una perspectiva provocativa o contraintuitiva sobre el tema.\nDesafía el pensamiento convencional y presenta una opinión que pueda generar debate, manteniendo un tono profesional.\n",
		Fields:       linkedinFields,
	}
}

// PersonaInstructions maps persona ids to style-emulation directives
// appended to the system prompt when a post requests a persona.
var PersonaInstructions = map[string]string{
	"pablo": `Emula el estilo de escritura de Pablo, caracterizado por:
- Tono visionario y estratégico
- Uso ocasional de anglicismos técnicos
- Párrafos cortos con ideas potentes
- Menciones frecuentes a innovación y transformación
- Balance entre profesionalismo y cercanía
- Uso selectivo de emojis estratégicos
- Preguntas reflexivas al final`,
	"aitor": `Emula el estilo de escritura de Aitor, caracterizado por:
- Tono directo y práctico
- Enfoque en resultados tangibles
- Uso de ejemplos concretos y datos
- Párrafos estructurados lógicamente
- Estilo conciso y claro
- Referencias ocasionales a experiencias personales
- Llamadas a la acción específicas`,
}
