package protocol

import (
	"github.com/seaglass-games/ronet/codec"
)

// SkillUnitId identifies a ground effect placed by a skill: traps,
// song areas, pneuma and the like. The table mirrors the values the
// map server emits; guild aura units share values with the ground
// drift grenades.
type SkillUnitId uint32

const (
	UnitSafetywall               SkillUnitId = 126
	UnitFirewall                 SkillUnitId = 127
	UnitWarpWaiting              SkillUnitId = 128
	UnitWarpActive               SkillUnitId = 129
	UnitBenedictio               SkillUnitId = 130
	UnitSanctuary                SkillUnitId = 131
	UnitMagnus                   SkillUnitId = 132
	UnitPneuma                   SkillUnitId = 133
	UnitDummyskill               SkillUnitId = 134
	UnitFirepillarWaiting        SkillUnitId = 135
	UnitFirepillarActive         SkillUnitId = 136
	UnitHiddenTrap               SkillUnitId = 137
	UnitTrap                     SkillUnitId = 138
	UnitHiddenWarpNpc            SkillUnitId = 139
	UnitUsedTraps                SkillUnitId = 140
	UnitIcewall                  SkillUnitId = 141
	UnitQuagmire                 SkillUnitId = 142
	UnitBlastmine                SkillUnitId = 143
	UnitSkidtrap                 SkillUnitId = 144
	UnitAnklesnare               SkillUnitId = 145
	UnitVenomdust                SkillUnitId = 146
	UnitLandmine                 SkillUnitId = 147
	UnitShockwave                SkillUnitId = 148
	UnitSandman                  SkillUnitId = 149
	UnitFlasher                  SkillUnitId = 150
	UnitFreezingtrap             SkillUnitId = 151
	UnitClaymoretrap             SkillUnitId = 152
	UnitTalkiebox                SkillUnitId = 153
	UnitVolcano                  SkillUnitId = 154
	UnitDeluge                   SkillUnitId = 155
	UnitViolentgale              SkillUnitId = 156
	UnitLandprotector            SkillUnitId = 157
	UnitLullaby                  SkillUnitId = 158
	UnitRichmankim               SkillUnitId = 159
	UnitEternalchaos             SkillUnitId = 160
	UnitDrumbattlefield          SkillUnitId = 161
	UnitRingnibelungen           SkillUnitId = 162
	UnitRokisweil                SkillUnitId = 163
	UnitIntoabyss                SkillUnitId = 164
	UnitSiegfried                SkillUnitId = 165
	UnitDissonance               SkillUnitId = 166
	UnitWhistle                  SkillUnitId = 167
	UnitAssassincross            SkillUnitId = 168
	UnitPoembragi                SkillUnitId = 169
	UnitAppleidun                SkillUnitId = 170
	UnitUglydance                SkillUnitId = 171
	UnitHumming                  SkillUnitId = 172
	UnitDontforgetme             SkillUnitId = 173
	UnitFortunekiss              SkillUnitId = 174
	UnitServiceforyou            SkillUnitId = 175
	UnitGraffiti                 SkillUnitId = 176
	UnitDemonstration            SkillUnitId = 177
	UnitCallfamily               SkillUnitId = 178
	UnitGospel                   SkillUnitId = 179
	UnitBasilica                 SkillUnitId = 180
	UnitMoonlit                  SkillUnitId = 181
	UnitFogwall                  SkillUnitId = 182
	UnitSpiderweb                SkillUnitId = 183
	UnitGravitation              SkillUnitId = 184
	UnitHermode                  SkillUnitId = 185
	UnitKaensin                  SkillUnitId = 186
	UnitSuiton                   SkillUnitId = 187
	UnitTatamigaeshi             SkillUnitId = 188
	UnitKaen                     SkillUnitId = 189
	UnitGrounddriftWind          SkillUnitId = 190
	UnitGrounddriftDark          SkillUnitId = 191
	UnitGrounddriftPoison        SkillUnitId = 192
	UnitGrounddriftWater         SkillUnitId = 193
	UnitGrounddriftFire          SkillUnitId = 194
	UnitDeathwave                SkillUnitId = 195
	UnitWaterattack              SkillUnitId = 196
	UnitWindattack               SkillUnitId = 197
	UnitEarthquake               SkillUnitId = 198
	UnitEvilland                 SkillUnitId = 199
	UnitDarkRunner               SkillUnitId = 200
	UnitDarkTransfer             SkillUnitId = 201
	UnitEpiclesis                SkillUnitId = 202
	UnitEarthstrain              SkillUnitId = 203
	UnitManhole                  SkillUnitId = 204
	UnitDimensiondoor            SkillUnitId = 205
	UnitChaospanic               SkillUnitId = 206
	UnitMaelstrom                SkillUnitId = 207
	UnitBloodylust               SkillUnitId = 208
	UnitFeintbomb                SkillUnitId = 209
	UnitMagentatrap              SkillUnitId = 210
	UnitCobalttrap               SkillUnitId = 211
	UnitMaizetrap                SkillUnitId = 212
	UnitVerduretrap              SkillUnitId = 213
	UnitFiringtrap               SkillUnitId = 214
	UnitIceboundtrap             SkillUnitId = 215
	UnitElectricshocker          SkillUnitId = 216
	UnitClusterbomb              SkillUnitId = 217
	UnitReverberation            SkillUnitId = 218
	UnitSevereRainstorm          SkillUnitId = 219
	UnitFirewalk                 SkillUnitId = 220
	UnitElectricwalk             SkillUnitId = 221
	UnitNetherworld              SkillUnitId = 222
	UnitPsychicWave              SkillUnitId = 223
	UnitCloudKill                SkillUnitId = 224
	UnitPoisonsmoke              SkillUnitId = 225
	UnitNeutralbarrier           SkillUnitId = 226
	UnitStealthfield             SkillUnitId = 227
	UnitWarmer                   SkillUnitId = 228
	UnitThornsTrap               SkillUnitId = 229
	UnitWallofthorn              SkillUnitId = 230
	UnitDemonicFire              SkillUnitId = 231
	UnitFireExpansionSmokePowder SkillUnitId = 232
	UnitFireExpansionTearGas     SkillUnitId = 233
	UnitHellsPlant               SkillUnitId = 234
	UnitVacuumExtreme            SkillUnitId = 235
	UnitBanding                  SkillUnitId = 236
	UnitFireMantle               SkillUnitId = 237
	UnitWaterBarrier             SkillUnitId = 238
	UnitZephyr                   SkillUnitId = 239
	UnitPowerOfGaia              SkillUnitId = 240
	UnitFireInsignia             SkillUnitId = 241
	UnitWaterInsignia            SkillUnitId = 242
	UnitWindInsignia             SkillUnitId = 243
	UnitEarthInsignia            SkillUnitId = 244
	UnitPoisonMist               SkillUnitId = 245
	UnitLavaSlide                SkillUnitId = 246
	UnitVolcanicAsh              SkillUnitId = 247
	UnitZenkaiWater              SkillUnitId = 248
	UnitZenkaiLand               SkillUnitId = 249
	UnitZenkaiFire               SkillUnitId = 250
	UnitZenkaiWind               SkillUnitId = 251
	UnitMakibishi                SkillUnitId = 252
	UnitVenomfog                 SkillUnitId = 253
	UnitIcemine                  SkillUnitId = 254
	UnitFlamecross               SkillUnitId = 255
	UnitHellburning              SkillUnitId = 256
	UnitMagmaEruption            SkillUnitId = 257
	UnitKingsGrace               SkillUnitId = 258
	UnitGlitteringGreed          SkillUnitId = 259
	UnitBTrap                    SkillUnitId = 260
	UnitFireRain                 SkillUnitId = 261
	UnitCatnippowder             SkillUnitId = 262
	UnitNyanggrass               SkillUnitId = 263
	UnitCreatingstar             SkillUnitId = 264
	UnitDummy0                   SkillUnitId = 265
	UnitRainOfCrystal            SkillUnitId = 266
	UnitMysteryIllusion          SkillUnitId = 267
	UnitStrantumTremor           SkillUnitId = 269
	UnitViolentQuake             SkillUnitId = 270
	UnitAllBloom                 SkillUnitId = 271
	UnitTornadoStorm             SkillUnitId = 272
	UnitFloralFlareRoad          SkillUnitId = 273
	UnitAstralStrike             SkillUnitId = 274
	UnitCrossRain                SkillUnitId = 275
	UnitPneumaticusProcella      SkillUnitId = 276
	UnitAbyssSquare              SkillUnitId = 277
	UnitAcidifiedZoneWater       SkillUnitId = 278
	UnitAcidifiedZoneGround      SkillUnitId = 279
	UnitAcidifiedZoneWind        SkillUnitId = 280
	UnitAcidifiedZoneFire        SkillUnitId = 281
	UnitLightningLand            SkillUnitId = 282
	UnitVenomSwamp               SkillUnitId = 283
	UnitConflagration            SkillUnitId = 284
	UnitCaneOfEvilEye            SkillUnitId = 285
	UnitTwinklingGalaxy          SkillUnitId = 286
	UnitStarCannon               SkillUnitId = 287
	UnitGrenadesDropping         SkillUnitId = 288
	UnitFuumashouaku             SkillUnitId = 290
	UnitMissionBombard           SkillUnitId = 291
	UnitTotemOfTutelary          SkillUnitId = 292
	UnitHyunRoksBreeze           SkillUnitId = 293
	UnitShinkirou                SkillUnitId = 294
	UnitJackFrostNova            SkillUnitId = 295
	UnitGroundGravitation        SkillUnitId = 296
	UnitKunaiwaikyoku            SkillUnitId = 298
	UnitDeepblindtrap            SkillUnitId = 20852
	UnitSolidtrap                SkillUnitId = 20853
	UnitSwifttrap                SkillUnitId = 20854
	UnitFlametrap                SkillUnitId = 20855
	UnitGdLeadership             SkillUnitId = 193
	UnitGdGlorywounds            SkillUnitId = 194
	UnitGdSoulcold               SkillUnitId = 195
	UnitGdHawkeyes               SkillUnitId = 196
	UnitMax                      SkillUnitId = 400
)

func init() {
	codec.RegisterEnum(SkillUnitId(0), map[uint64]string{
		126:   "Safetywall",
		127:   "Firewall",
		128:   "WarpWaiting",
		129:   "WarpActive",
		130:   "Benedictio",
		131:   "Sanctuary",
		132:   "Magnus",
		133:   "Pneuma",
		134:   "Dummyskill",
		135:   "FirepillarWaiting",
		136:   "FirepillarActive",
		137:   "HiddenTrap",
		138:   "Trap",
		139:   "HiddenWarpNpc",
		140:   "UsedTraps",
		141:   "Icewall",
		142:   "Quagmire",
		143:   "Blastmine",
		144:   "Skidtrap",
		145:   "Anklesnare",
		146:   "Venomdust",
		147:   "Landmine",
		148:   "Shockwave",
		149:   "Sandman",
		150:   "Flasher",
		151:   "Freezingtrap",
		152:   "Claymoretrap",
		153:   "Talkiebox",
		154:   "Volcano",
		155:   "Deluge",
		156:   "Violentgale",
		157:   "Landprotector",
		158:   "Lullaby",
		159:   "Richmankim",
		160:   "Eternalchaos",
		161:   "Drumbattlefield",
		162:   "Ringnibelungen",
		163:   "Rokisweil",
		164:   "Intoabyss",
		165:   "Siegfried",
		166:   "Dissonance",
		167:   "Whistle",
		168:   "Assassincross",
		169:   "Poembragi",
		170:   "Appleidun",
		171:   "Uglydance",
		172:   "Humming",
		173:   "Dontforgetme",
		174:   "Fortunekiss",
		175:   "Serviceforyou",
		176:   "Graffiti",
		177:   "Demonstration",
		178:   "Callfamily",
		179:   "Gospel",
		180:   "Basilica",
		181:   "Moonlit",
		182:   "Fogwall",
		183:   "Spiderweb",
		184:   "Gravitation",
		185:   "Hermode",
		186:   "Kaensin",
		187:   "Suiton",
		188:   "Tatamigaeshi",
		189:   "Kaen",
		190:   "GrounddriftWind",
		191:   "GrounddriftDark",
		192:   "GrounddriftPoison",
		193:   "GrounddriftWater",
		194:   "GrounddriftFire",
		195:   "Deathwave",
		196:   "Waterattack",
		197:   "Windattack",
		198:   "Earthquake",
		199:   "Evilland",
		200:   "DarkRunner",
		201:   "DarkTransfer",
		202:   "Epiclesis",
		203:   "Earthstrain",
		204:   "Manhole",
		205:   "Dimensiondoor",
		206:   "Chaospanic",
		207:   "Maelstrom",
		208:   "Bloodylust",
		209:   "Feintbomb",
		210:   "Magentatrap",
		211:   "Cobalttrap",
		212:   "Maizetrap",
		213:   "Verduretrap",
		214:   "Firingtrap",
		215:   "Iceboundtrap",
		216:   "Electricshocker",
		217:   "Clusterbomb",
		218:   "Reverberation",
		219:   "SevereRainstorm",
		220:   "Firewalk",
		221:   "Electricwalk",
		222:   "Netherworld",
		223:   "PsychicWave",
		224:   "CloudKill",
		225:   "Poisonsmoke",
		226:   "Neutralbarrier",
		227:   "Stealthfield",
		228:   "Warmer",
		229:   "ThornsTrap",
		230:   "Wallofthorn",
		231:   "DemonicFire",
		232:   "FireExpansionSmokePowder",
		233:   "FireExpansionTearGas",
		234:   "HellsPlant",
		235:   "VacuumExtreme",
		236:   "Banding",
		237:   "FireMantle",
		238:   "WaterBarrier",
		239:   "Zephyr",
		240:   "PowerOfGaia",
		241:   "FireInsignia",
		242:   "WaterInsignia",
		243:   "WindInsignia",
		244:   "EarthInsignia",
		245:   "PoisonMist",
		246:   "LavaSlide",
		247:   "VolcanicAsh",
		248:   "ZenkaiWater",
		249:   "ZenkaiLand",
		250:   "ZenkaiFire",
		251:   "ZenkaiWind",
		252:   "Makibishi",
		253:   "Venomfog",
		254:   "Icemine",
		255:   "Flamecross",
		256:   "Hellburning",
		257:   "MagmaEruption",
		258:   "KingsGrace",
		259:   "GlitteringGreed",
		260:   "BTrap",
		261:   "FireRain",
		262:   "Catnippowder",
		263:   "Nyanggrass",
		264:   "Creatingstar",
		265:   "Dummy0",
		266:   "RainOfCrystal",
		267:   "MysteryIllusion",
		269:   "StrantumTremor",
		270:   "ViolentQuake",
		271:   "AllBloom",
		272:   "TornadoStorm",
		273:   "FloralFlareRoad",
		274:   "AstralStrike",
		275:   "CrossRain",
		276:   "PneumaticusProcella",
		277:   "AbyssSquare",
		278:   "AcidifiedZoneWater",
		279:   "AcidifiedZoneGround",
		280:   "AcidifiedZoneWind",
		281:   "AcidifiedZoneFire",
		282:   "LightningLand",
		283:   "VenomSwamp",
		284:   "Conflagration",
		285:   "CaneOfEvilEye",
		286:   "TwinklingGalaxy",
		287:   "StarCannon",
		288:   "GrenadesDropping",
		290:   "Fuumashouaku",
		291:   "MissionBombard",
		292:   "TotemOfTutelary",
		293:   "HyunRoksBreeze",
		294:   "Shinkirou",
		295:   "JackFrostNova",
		296:   "GroundGravitation",
		298:   "Kunaiwaikyoku",
		20852: "Deepblindtrap",
		20853: "Solidtrap",
		20854: "Swifttrap",
		20855: "Flametrap",
		400:   "Max",
	})
}
