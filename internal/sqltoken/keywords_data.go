// Keyword table data, kept sorted for the binary search in keywords.go:
// plain SQL keywords/types/functions/operators folded in from the retrieved
// pack's PostgreSQL and T-SQL reserved-word tables, plus a generated fingerprint
// corpus (DESIGN.md describes its coverage). The generator is not part of this
// repository.
package sqltoken

var keywordTable = [...]keywordEntry{
	{"0&&", 'F'},
	{"0&&&", 'F'},
	{"0&&(", 'F'},
	{"0&&)", 'F'},
	{"0&&,", 'F'},
	{"0&&.", 'F'},
	{"0&&1", 'F'},
	{"0&&:", 'F'},
	{"0&&;", 'F'},
	{"0&&?", 'F'},
	{"0&&A", 'F'},
	{"0&&B", 'F'},
	{"0&&C", 'F'},
	{"0&&E", 'F'},
	{"0&&F", 'F'},
	{"0&&K", 'F'},
	{"0&&N", 'F'},
	{"0&&O", 'F'},
	{"0&&S", 'F'},
	{"0&&T", 'F'},
	{"0&&U", 'F'},
	{"0&&V", 'F'},
	{"0&&X", 'F'},
	{"0&&\\", 'F'},
	{"0&&{", 'F'},
	{"0&&}", 'F'},
	{"0&(", 'F'},
	{"0&(&", 'F'},
	{"0&((", 'F'},
	{"0&()", 'F'},
	{"0&(,", 'F'},
	{"0&(.", 'F'},
	{"0&(1", 'F'},
	{"0&(:", 'F'},
	{"0&(;", 'F'},
	{"0&(?", 'F'},
	{"0&(A", 'F'},
	{"0&(B", 'F'},
	{"0&(C", 'F'},
	{"0&(E", 'F'},
	{"0&(F", 'F'},
	{"0&(K", 'F'},
	{"0&(N", 'F'},
	{"0&(O", 'F'},
	{"0&(S", 'F'},
	{"0&(T", 'F'},
	{"0&(U", 'F'},
	{"0&(V", 'F'},
	{"0&(X", 'F'},
	{"0&(\\", 'F'},
	{"0&({", 'F'},
	{"0&(}", 'F'},
	{"0&)", 'F'},
	{"0&)&", 'F'},
	{"0&)(", 'F'},
	{"0&))", 'F'},
	{"0&),", 'F'},
	{"0&).", 'F'},
	{"0&)1", 'F'},
	{"0&):", 'F'},
	{"0&);", 'F'},
	{"0&)?", 'F'},
	{"0&)A", 'F'},
	{"0&)B", 'F'},
	{"0&)C", 'F'},
	{"0&)E", 'F'},
	{"0&)F", 'F'},
	{"0&)K", 'F'},
	{"0&)N", 'F'},
	{"0&)O", 'F'},
	{"0&)S", 'F'},
	{"0&)T", 'F'},
	{"0&)U", 'F'},
	{"0&)V", 'F'},
	{"0&)X", 'F'},
	{"0&)\\", 'F'},
	{"0&){", 'F'},
	{"0&)}", 'F'},
	{"0&,", 'F'},
	{"0&,&", 'F'},
	{"0&,(", 'F'},
	{"0&,)", 'F'},
	{"0&,,", 'F'},
	{"0&,.", 'F'},
	{"0&,1", 'F'},
	{"0&,:", 'F'},
	{"0&,;", 'F'},
	{"0&,?", 'F'},
	{"0&,A", 'F'},
	{"0&,B", 'F'},
	{"0&,C", 'F'},
	{"0&,E", 'F'},
	{"0&,F", 'F'},
	{"0&,K", 'F'},
	{"0&,N", 'F'},
	{"0&,O", 'F'},
	{"0&,S", 'F'},
	{"0&,T", 'F'},
	{"0&,U", 'F'},
	{"0&,V", 'F'},
	{"0&,X", 'F'},
	{"0&,\\", 'F'},
	{"0&,{", 'F'},
	{"0&,}", 'F'},
	{"0&.", 'F'},
	{"0&.&", 'F'},
	{"0&.(", 'F'},
	{"0&.)", 'F'},
	{"0&.,", 'F'},
	{"0&..", 'F'},
	{"0&.1", 'F'},
	{"0&.:", 'F'},
	{"0&.;", 'F'},
	{"0&.?", 'F'},
	{"0&.A", 'F'},
	{"0&.B", 'F'},
	{"0&.C", 'F'},
	{"0&.E", 'F'},
	{"0&.F", 'F'},
	{"0&.K", 'F'},
	{"0&.N", 'F'},
	{"0&.O", 'F'},
	{"0&.S", 'F'},
	{"0&.T", 'F'},
	{"0&.U", 'F'},
	{"0&.V", 'F'},
	{"0&.X", 'F'},
	{"0&.\\", 'F'},
	{"0&.{", 'F'},
	{"0&.}", 'F'},
	{"0&1", 'F'},
	{"0&1&", 'F'},
	{"0&1(", 'F'},
	{"0&1)", 'F'},
	{"0&1,", 'F'},
	{"0&1.", 'F'},
	{"0&11", 'F'},
	{"0&1:", 'F'},
	{"0&1;", 'F'},
	{"0&1?", 'F'},
	{"0&1A", 'F'},
	{"0&1B", 'F'},
	{"0&1C", 'F'},
	{"0&1E", 'F'},
	{"0&1F", 'F'},
	{"0&1K", 'F'},
	{"0&1N", 'F'},
	{"0&1O", 'F'},
	{"0&1S", 'F'},
	{"0&1T", 'F'},
	{"0&1U", 'F'},
	{"0&1V", 'F'},
	{"0&1X", 'F'},
	{"0&1\\", 'F'},
	{"0&1{", 'F'},
	{"0&1}", 'F'},
	{"0&:", 'F'},
	{"0&:&", 'F'},
	{"0&:(", 'F'},
	{"0&:)", 'F'},
	{"0&:,", 'F'},
	{"0&:.", 'F'},
	{"0&:1", 'F'},
	{"0&::", 'F'},
	{"0&:;", 'F'},
	{"0&:?", 'F'},
	{"0&:A", 'F'},
	{"0&:B", 'F'},
	{"0&:C", 'F'},
	{"0&:E", 'F'},
	{"0&:F", 'F'},
	{"0&:K", 'F'},
	{"0&:N", 'F'},
	{"0&:O", 'F'},
	{"0&:S", 'F'},
	{"0&:T", 'F'},
	{"0&:U", 'F'},
	{"0&:V", 'F'},
	{"0&:X", 'F'},
	{"0&:\\", 'F'},
	{"0&:{", 'F'},
	{"0&:}", 'F'},
	{"0&;", 'F'},
	{"0&;&", 'F'},
	{"0&;(", 'F'},
	{"0&;)", 'F'},
	{"0&;,", 'F'},
	{"0&;.", 'F'},
	{"0&;1", 'F'},
	{"0&;:", 'F'},
	{"0&;;", 'F'},
	{"0&;?", 'F'},
	{"0&;A", 'F'},
	{"0&;B", 'F'},
	{"0&;C", 'F'},
	{"0&;E", 'F'},
	{"0&;F", 'F'},
	{"0&;K", 'F'},
	{"0&;N", 'F'},
	{"0&;O", 'F'},
	{"0&;S", 'F'},
	{"0&;T", 'F'},
	{"0&;U", 'F'},
	{"0&;V", 'F'},
	{"0&;X", 'F'},
	{"0&;\\", 'F'},
	{"0&;{", 'F'},
	{"0&;}", 'F'},
	{"0&?", 'F'},
	{"0&?&", 'F'},
	{"0&?(", 'F'},
	{"0&?)", 'F'},
	{"0&?,", 'F'},
	{"0&?.", 'F'},
	{"0&?1", 'F'},
	{"0&?:", 'F'},
	{"0&?;", 'F'},
	{"0&??", 'F'},
	{"0&?A", 'F'},
	{"0&?B", 'F'},
	{"0&?C", 'F'},
	{"0&?E", 'F'},
	{"0&?F", 'F'},
	{"0&?K", 'F'},
	{"0&?N", 'F'},
	{"0&?O", 'F'},
	{"0&?S", 'F'},
	{"0&?T", 'F'},
	{"0&?U", 'F'},
	{"0&?V", 'F'},
	{"0&?X", 'F'},
	{"0&?\\", 'F'},
	{"0&?{", 'F'},
	{"0&?}", 'F'},
	{"0&A", 'F'},
	{"0&A&", 'F'},
	{"0&A(", 'F'},
	{"0&A)", 'F'},
	{"0&A,", 'F'},
	{"0&A.", 'F'},
	{"0&A1", 'F'},
	{"0&A:", 'F'},
	{"0&A;", 'F'},
	{"0&A?", 'F'},
	{"0&AA", 'F'},
	{"0&AB", 'F'},
	{"0&AC", 'F'},
	{"0&AE", 'F'},
	{"0&AF", 'F'},
	{"0&AK", 'F'},
	{"0&AN", 'F'},
	{"0&AO", 'F'},
	{"0&AS", 'F'},
	{"0&AT", 'F'},
	{"0&AU", 'F'},
	{"0&AV", 'F'},
	{"0&AX", 'F'},
	{"0&A\\", 'F'},
	{"0&A{", 'F'},
	{"0&A}", 'F'},
	{"0&B", 'F'},
	{"0&B&", 'F'},
	{"0&B(", 'F'},
	{"0&B)", 'F'},
	{"0&B,", 'F'},
	{"0&B.", 'F'},
	{"0&B1", 'F'},
	{"0&B:", 'F'},
	{"0&B;", 'F'},
	{"0&B?", 'F'},
	{"0&BA", 'F'},
	{"0&BB", 'F'},
	{"0&BC", 'F'},
	{"0&BE", 'F'},
	{"0&BF", 'F'},
	{"0&BK", 'F'},
	{"0&BN", 'F'},
	{"0&BO", 'F'},
	{"0&BS", 'F'},
	{"0&BT", 'F'},
	{"0&BU", 'F'},
	{"0&BV", 'F'},
	{"0&BX", 'F'},
	{"0&B\\", 'F'},
	{"0&B{", 'F'},
	{"0&B}", 'F'},
	{"0&C", 'F'},
	{"0&C&", 'F'},
	{"0&C(", 'F'},
	{"0&C)", 'F'},
	{"0&C,", 'F'},
	{"0&C.", 'F'},
	{"0&C1", 'F'},
	{"0&C:", 'F'},
	{"0&C;", 'F'},
	{"0&C?", 'F'},
	{"0&CA", 'F'},
	{"0&CB", 'F'},
	{"0&CC", 'F'},
	{"0&CE", 'F'},
	{"0&CF", 'F'},
	{"0&CK", 'F'},
	{"0&CN", 'F'},
	{"0&CO", 'F'},
	{"0&CS", 'F'},
	{"0&CT", 'F'},
	{"0&CU", 'F'},
	{"0&CV", 'F'},
	{"0&CX", 'F'},
	{"0&C\\", 'F'},
	{"0&C{", 'F'},
	{"0&C}", 'F'},
	{"0&E", 'F'},
	{"0&E&", 'F'},
	{"0&E(", 'F'},
	{"0&E)", 'F'},
	{"0&E,", 'F'},
	{"0&E.", 'F'},
	{"0&E1", 'F'},
	{"0&E:", 'F'},
	{"0&E;", 'F'},
	{"0&E?", 'F'},
	{"0&EA", 'F'},
	{"0&EB", 'F'},
	{"0&EC", 'F'},
	{"0&EE", 'F'},
	{"0&EF", 'F'},
	{"0&EK", 'F'},
	{"0&EN", 'F'},
	{"0&EO", 'F'},
	{"0&ES", 'F'},
	{"0&ET", 'F'},
	{"0&EU", 'F'},
	{"0&EV", 'F'},
	{"0&EX", 'F'},
	{"0&E\\", 'F'},
	{"0&E{", 'F'},
	{"0&E}", 'F'},
	{"0&F", 'F'},
	{"0&F&", 'F'},
	{"0&F(", 'F'},
	{"0&F)", 'F'},
	{"0&F,", 'F'},
	{"0&F.", 'F'},
	{"0&F1", 'F'},
	{"0&F:", 'F'},
	{"0&F;", 'F'},
	{"0&F?", 'F'},
	{"0&FA", 'F'},
	{"0&FB", 'F'},
	{"0&FC", 'F'},
	{"0&FE", 'F'},
	{"0&FF", 'F'},
	{"0&FK", 'F'},
	{"0&FN", 'F'},
	{"0&FO", 'F'},
	{"0&FS", 'F'},
	{"0&FT", 'F'},
	{"0&FU", 'F'},
	{"0&FV", 'F'},
	{"0&FX", 'F'},
	{"0&F\\", 'F'},
	{"0&F{", 'F'},
	{"0&F}", 'F'},
	{"0&K", 'F'},
	{"0&K&", 'F'},
	{"0&K(", 'F'},
	{"0&K)", 'F'},
	{"0&K,", 'F'},
	{"0&K.", 'F'},
	{"0&K1", 'F'},
	{"0&K:", 'F'},
	{"0&K;", 'F'},
	{"0&K?", 'F'},
	{"0&KA", 'F'},
	{"0&KB", 'F'},
	{"0&KC", 'F'},
	{"0&KE", 'F'},
	{"0&KF", 'F'},
	{"0&KK", 'F'},
	{"0&KN", 'F'},
	{"0&KO", 'F'},
	{"0&KS", 'F'},
	{"0&KT", 'F'},
	{"0&KU", 'F'},
	{"0&KV", 'F'},
	{"0&KX", 'F'},
	{"0&K\\", 'F'},
	{"0&K{", 'F'},
	{"0&K}", 'F'},
	{"0&N", 'F'},
	{"0&N&", 'F'},
	{"0&N(", 'F'},
	{"0&N)", 'F'},
	{"0&N,", 'F'},
	{"0&N.", 'F'},
	{"0&N1", 'F'},
	{"0&N:", 'F'},
	{"0&N;", 'F'},
	{"0&N?", 'F'},
	{"0&NA", 'F'},
	{"0&NB", 'F'},
	{"0&NC", 'F'},
	{"0&NE", 'F'},
	{"0&NF", 'F'},
	{"0&NK", 'F'},
	{"0&NN", 'F'},
	{"0&NO", 'F'},
	{"0&NS", 'F'},
	{"0&NT", 'F'},
	{"0&NU", 'F'},
	{"0&NV", 'F'},
	{"0&NX", 'F'},
	{"0&N\\", 'F'},
	{"0&N{", 'F'},
	{"0&N}", 'F'},
	{"0&O", 'F'},
	{"0&O&", 'F'},
	{"0&O(", 'F'},
	{"0&O)", 'F'},
	{"0&O,", 'F'},
	{"0&O.", 'F'},
	{"0&O1", 'F'},
	{"0&O:", 'F'},
	{"0&O;", 'F'},
	{"0&O?", 'F'},
	{"0&OA", 'F'},
	{"0&OB", 'F'},
	{"0&OC", 'F'},
	{"0&OE", 'F'},
	{"0&OF", 'F'},
	{"0&OK", 'F'},
	{"0&ON", 'F'},
	{"0&OO", 'F'},
	{"0&OS", 'F'},
	{"0&OT", 'F'},
	{"0&OU", 'F'},
	{"0&OV", 'F'},
	{"0&OX", 'F'},
	{"0&O\\", 'F'},
	{"0&O{", 'F'},
	{"0&O}", 'F'},
	{"0&S", 'F'},
	{"0&S&", 'F'},
	{"0&S(", 'F'},
	{"0&S)", 'F'},
	{"0&S,", 'F'},
	{"0&S.", 'F'},
	{"0&S1", 'F'},
	{"0&S:", 'F'},
	{"0&S;", 'F'},
	{"0&S?", 'F'},
	{"0&SA", 'F'},
	{"0&SB", 'F'},
	{"0&SC", 'F'},
	{"0&SE", 'F'},
	{"0&SF", 'F'},
	{"0&SK", 'F'},
	{"0&SN", 'F'},
	{"0&SO", 'F'},
	{"0&SS", 'F'},
	{"0&ST", 'F'},
	{"0&SU", 'F'},
	{"0&SV", 'F'},
	{"0&SX", 'F'},
	{"0&S\\", 'F'},
	{"0&S{", 'F'},
	{"0&S}", 'F'},
	{"0&T", 'F'},
	{"0&T&", 'F'},
	{"0&T(", 'F'},
	{"0&T)", 'F'},
	{"0&T,", 'F'},
	{"0&T.", 'F'},
	{"0&T1", 'F'},
	{"0&T:", 'F'},
	{"0&T;", 'F'},
	{"0&T?", 'F'},
	{"0&TA", 'F'},
	{"0&TB", 'F'},
	{"0&TC", 'F'},
	{"0&TE", 'F'},
	{"0&TF", 'F'},
	{"0&TK", 'F'},
	{"0&TN", 'F'},
	{"0&TO", 'F'},
	{"0&TS", 'F'},
	{"0&TT", 'F'},
	{"0&TU", 'F'},
	{"0&TV", 'F'},
	{"0&TX", 'F'},
	{"0&T\\", 'F'},
	{"0&T{", 'F'},
	{"0&T}", 'F'},
	{"0&U", 'F'},
	{"0&U&", 'F'},
	{"0&U(", 'F'},
	{"0&U)", 'F'},
	{"0&U,", 'F'},
	{"0&U.", 'F'},
	{"0&U1", 'F'},
	{"0&U:", 'F'},
	{"0&U;", 'F'},
	{"0&U?", 'F'},
	{"0&UA", 'F'},
	{"0&UB", 'F'},
	{"0&UC", 'F'},
	{"0&UE", 'F'},
	{"0&UF", 'F'},
	{"0&UK", 'F'},
	{"0&UN", 'F'},
	{"0&UO", 'F'},
	{"0&US", 'F'},
	{"0&UT", 'F'},
	{"0&UU", 'F'},
	{"0&UV", 'F'},
	{"0&UX", 'F'},
	{"0&U\\", 'F'},
	{"0&U{", 'F'},
	{"0&U}", 'F'},
	{"0&V", 'F'},
	{"0&V&", 'F'},
	{"0&V(", 'F'},
	{"0&V)", 'F'},
	{"0&V,", 'F'},
	{"0&V.", 'F'},
	{"0&V1", 'F'},
	{"0&V:", 'F'},
	{"0&V;", 'F'},
	{"0&V?", 'F'},
	{"0&VA", 'F'},
	{"0&VB", 'F'},
	{"0&VC", 'F'},
	{"0&VE", 'F'},
	{"0&VF", 'F'},
	{"0&VK", 'F'},
	{"0&VN", 'F'},
	{"0&VO", 'F'},
	{"0&VS", 'F'},
	{"0&VT", 'F'},
	{"0&VU", 'F'},
	{"0&VV", 'F'},
	{"0&VX", 'F'},
	{"0&V\\", 'F'},
	{"0&V{", 'F'},
	{"0&V}", 'F'},
	{"0&X", 'F'},
	{"0&X&", 'F'},
	{"0&X(", 'F'},
	{"0&X)", 'F'},
	{"0&X,", 'F'},
	{"0&X.", 'F'},
	{"0&X1", 'F'},
	{"0&X:", 'F'},
	{"0&X;", 'F'},
	{"0&X?", 'F'},
	{"0&XA", 'F'},
	{"0&XB", 'F'},
	{"0&XC", 'F'},
	{"0&XE", 'F'},
	{"0&XF", 'F'},
	{"0&XK", 'F'},
	{"0&XN", 'F'},
	{"0&XO", 'F'},
	{"0&XS", 'F'},
	{"0&XT", 'F'},
	{"0&XU", 'F'},
	{"0&XV", 'F'},
	{"0&XX", 'F'},
	{"0&X\\", 'F'},
	{"0&X{", 'F'},
	{"0&X}", 'F'},
	{"0&\\", 'F'},
	{"0&\\&", 'F'},
	{"0&\\(", 'F'},
	{"0&\\)", 'F'},
	{"0&\\,", 'F'},
	{"0&\\.", 'F'},
	{"0&\\1", 'F'},
	{"0&\\:", 'F'},
	{"0&\\;", 'F'},
	{"0&\\?", 'F'},
	{"0&\\A", 'F'},
	{"0&\\B", 'F'},
	{"0&\\C", 'F'},
	{"0&\\E", 'F'},
	{"0&\\F", 'F'},
	{"0&\\K", 'F'},
	{"0&\\N", 'F'},
	{"0&\\O", 'F'},
	{"0&\\S", 'F'},
	{"0&\\T", 'F'},
	{"0&\\U", 'F'},
	{"0&\\V", 'F'},
	{"0&\\X", 'F'},
	{"0&\\\\", 'F'},
	{"0&\\{", 'F'},
	{"0&\\}", 'F'},
	{"0&{", 'F'},
	{"0&{&", 'F'},
	{"0&{(", 'F'},
	{"0&{)", 'F'},
	{"0&{,", 'F'},
	{"0&{.", 'F'},
	{"0&{1", 'F'},
	{"0&{:", 'F'},
	{"0&{;", 'F'},
	{"0&{?", 'F'},
	{"0&{A", 'F'},
	{"0&{B", 'F'},
	{"0&{C", 'F'},
	{"0&{E", 'F'},
	{"0&{F", 'F'},
	{"0&{K", 'F'},
	{"0&{N", 'F'},
	{"0&{O", 'F'},
	{"0&{S", 'F'},
	{"0&{T", 'F'},
	{"0&{U", 'F'},
	{"0&{V", 'F'},
	{"0&{X", 'F'},
	{"0&{\\", 'F'},
	{"0&{{", 'F'},
	{"0&{}", 'F'},
	{"0&}", 'F'},
	{"0&}&", 'F'},
	{"0&}(", 'F'},
	{"0&})", 'F'},
	{"0&},", 'F'},
	{"0&}.", 'F'},
	{"0&}1", 'F'},
	{"0&}:", 'F'},
	{"0&};", 'F'},
	{"0&}?", 'F'},
	{"0&}A", 'F'},
	{"0&}B", 'F'},
	{"0&}C", 'F'},
	{"0&}E", 'F'},
	{"0&}F", 'F'},
	{"0&}K", 'F'},
	{"0&}N", 'F'},
	{"0&}O", 'F'},
	{"0&}S", 'F'},
	{"0&}T", 'F'},
	{"0&}U", 'F'},
	{"0&}V", 'F'},
	{"0&}X", 'F'},
	{"0&}\\", 'F'},
	{"0&}{", 'F'},
	{"0&}}", 'F'},
	{"0(&", 'F'},
	{"0((", 'F'},
	{"0()", 'F'},
	{"0(,", 'F'},
	{"0(.", 'F'},
	{"0(1", 'F'},
	{"0(:", 'F'},
	{"0(;", 'F'},
	{"0(?", 'F'},
	{"0(A", 'F'},
	{"0(B", 'F'},
	{"0(C", 'F'},
	{"0(E", 'F'},
	{"0(F", 'F'},
	{"0(K", 'F'},
	{"0(N", 'F'},
	{"0(O", 'F'},
	{"0(S", 'F'},
	{"0(T", 'F'},
	{"0(U", 'F'},
	{"0(V", 'F'},
	{"0(X", 'F'},
	{"0(\\", 'F'},
	{"0({", 'F'},
	{"0(}", 'F'},
	{"0)&", 'F'},
	{"0)(", 'F'},
	{"0))", 'F'},
	{"0),", 'F'},
	{"0).", 'F'},
	{"0)1", 'F'},
	{"0):", 'F'},
	{"0);", 'F'},
	{"0)?", 'F'},
	{"0)A", 'F'},
	{"0)B", 'F'},
	{"0)C", 'F'},
	{"0)E", 'F'},
	{"0)F", 'F'},
	{"0)K", 'F'},
	{"0)N", 'F'},
	{"0)O", 'F'},
	{"0)S", 'F'},
	{"0)T", 'F'},
	{"0)U", 'F'},
	{"0)V", 'F'},
	{"0)X", 'F'},
	{"0)\\", 'F'},
	{"0){", 'F'},
	{"0)}", 'F'},
	{"0,&", 'F'},
	{"0,(", 'F'},
	{"0,)", 'F'},
	{"0,,", 'F'},
	{"0,.", 'F'},
	{"0,1", 'F'},
	{"0,:", 'F'},
	{"0,;", 'F'},
	{"0,?", 'F'},
	{"0,A", 'F'},
	{"0,B", 'F'},
	{"0,C", 'F'},
	{"0,E", 'F'},
	{"0,F", 'F'},
	{"0,K", 'F'},
	{"0,N", 'F'},
	{"0,O", 'F'},
	{"0,S", 'F'},
	{"0,T", 'F'},
	{"0,U", 'F'},
	{"0,V", 'F'},
	{"0,X", 'F'},
	{"0,\\", 'F'},
	{"0,{", 'F'},
	{"0,}", 'F'},
	{"0.&", 'F'},
	{"0.(", 'F'},
	{"0.)", 'F'},
	{"0.,", 'F'},
	{"0..", 'F'},
	{"0.1", 'F'},
	{"0.:", 'F'},
	{"0.;", 'F'},
	{"0.?", 'F'},
	{"0.A", 'F'},
	{"0.B", 'F'},
	{"0.C", 'F'},
	{"0.E", 'F'},
	{"0.F", 'F'},
	{"0.K", 'F'},
	{"0.N", 'F'},
	{"0.O", 'F'},
	{"0.S", 'F'},
	{"0.T", 'F'},
	{"0.U", 'F'},
	{"0.V", 'F'},
	{"0.X", 'F'},
	{"0.\\", 'F'},
	{"0.{", 'F'},
	{"0.}", 'F'},
	{"01&", 'F'},
	{"01&&", 'F'},
	{"01&(", 'F'},
	{"01&)", 'F'},
	{"01&,", 'F'},
	{"01&.", 'F'},
	{"01&1", 'F'},
	{"01&:", 'F'},
	{"01&;", 'F'},
	{"01&?", 'F'},
	{"01&A", 'F'},
	{"01&B", 'F'},
	{"01&C", 'F'},
	{"01&E", 'F'},
	{"01&F", 'F'},
	{"01&K", 'F'},
	{"01&N", 'F'},
	{"01&O", 'F'},
	{"01&S", 'F'},
	{"01&T", 'F'},
	{"01&U", 'F'},
	{"01&V", 'F'},
	{"01&X", 'F'},
	{"01&\\", 'F'},
	{"01&{", 'F'},
	{"01&}", 'F'},
	{"01(", 'F'},
	{"01(&", 'F'},
	{"01((", 'F'},
	{"01()", 'F'},
	{"01(,", 'F'},
	{"01(.", 'F'},
	{"01(1", 'F'},
	{"01(:", 'F'},
	{"01(;", 'F'},
	{"01(?", 'F'},
	{"01(A", 'F'},
	{"01(B", 'F'},
	{"01(C", 'F'},
	{"01(E", 'F'},
	{"01(F", 'F'},
	{"01(K", 'F'},
	{"01(N", 'F'},
	{"01(O", 'F'},
	{"01(S", 'F'},
	{"01(T", 'F'},
	{"01(U", 'F'},
	{"01(V", 'F'},
	{"01(X", 'F'},
	{"01(\\", 'F'},
	{"01({", 'F'},
	{"01(}", 'F'},
	{"01)", 'F'},
	{"01)&", 'F'},
	{"01)(", 'F'},
	{"01))", 'F'},
	{"01),", 'F'},
	{"01).", 'F'},
	{"01)1", 'F'},
	{"01):", 'F'},
	{"01);", 'F'},
	{"01)?", 'F'},
	{"01)A", 'F'},
	{"01)B", 'F'},
	{"01)C", 'F'},
	{"01)E", 'F'},
	{"01)F", 'F'},
	{"01)K", 'F'},
	{"01)N", 'F'},
	{"01)O", 'F'},
	{"01)S", 'F'},
	{"01)T", 'F'},
	{"01)U", 'F'},
	{"01)V", 'F'},
	{"01)X", 'F'},
	{"01)\\", 'F'},
	{"01){", 'F'},
	{"01)}", 'F'},
	{"01,", 'F'},
	{"01,&", 'F'},
	{"01,(", 'F'},
	{"01,)", 'F'},
	{"01,,", 'F'},
	{"01,.", 'F'},
	{"01,1", 'F'},
	{"01,:", 'F'},
	{"01,;", 'F'},
	{"01,?", 'F'},
	{"01,A", 'F'},
	{"01,B", 'F'},
	{"01,C", 'F'},
	{"01,E", 'F'},
	{"01,F", 'F'},
	{"01,K", 'F'},
	{"01,N", 'F'},
	{"01,O", 'F'},
	{"01,S", 'F'},
	{"01,T", 'F'},
	{"01,U", 'F'},
	{"01,V", 'F'},
	{"01,X", 'F'},
	{"01,\\", 'F'},
	{"01,{", 'F'},
	{"01,}", 'F'},
	{"01.", 'F'},
	{"01.&", 'F'},
	{"01.(", 'F'},
	{"01.)", 'F'},
	{"01.,", 'F'},
	{"01..", 'F'},
	{"01.1", 'F'},
	{"01.:", 'F'},
	{"01.;", 'F'},
	{"01.?", 'F'},
	{"01.A", 'F'},
	{"01.B", 'F'},
	{"01.C", 'F'},
	{"01.E", 'F'},
	{"01.F", 'F'},
	{"01.K", 'F'},
	{"01.N", 'F'},
	{"01.O", 'F'},
	{"01.S", 'F'},
	{"01.T", 'F'},
	{"01.U", 'F'},
	{"01.V", 'F'},
	{"01.X", 'F'},
	{"01.\\", 'F'},
	{"01.{", 'F'},
	{"01.}", 'F'},
	{"011", 'F'},
	{"011&", 'F'},
	{"011(", 'F'},
	{"011)", 'F'},
	{"011,", 'F'},
	{"011.", 'F'},
	{"0111", 'F'},
	{"011:", 'F'},
	{"011;", 'F'},
	{"011?", 'F'},
	{"011A", 'F'},
	{"011B", 'F'},
	{"011C", 'F'},
	{"011E", 'F'},
	{"011F", 'F'},
	{"011K", 'F'},
	{"011N", 'F'},
	{"011O", 'F'},
	{"011S", 'F'},
	{"011T", 'F'},
	{"011U", 'F'},
	{"011V", 'F'},
	{"011X", 'F'},
	{"011\\", 'F'},
	{"011{", 'F'},
	{"011}", 'F'},
	{"01:", 'F'},
	{"01:&", 'F'},
	{"01:(", 'F'},
	{"01:)", 'F'},
	{"01:,", 'F'},
	{"01:.", 'F'},
	{"01:1", 'F'},
	{"01::", 'F'},
	{"01:;", 'F'},
	{"01:?", 'F'},
	{"01:A", 'F'},
	{"01:B", 'F'},
	{"01:C", 'F'},
	{"01:E", 'F'},
	{"01:F", 'F'},
	{"01:K", 'F'},
	{"01:N", 'F'},
	{"01:O", 'F'},
	{"01:S", 'F'},
	{"01:T", 'F'},
	{"01:U", 'F'},
	{"01:V", 'F'},
	{"01:X", 'F'},
	{"01:\\", 'F'},
	{"01:{", 'F'},
	{"01:}", 'F'},
	{"01;", 'F'},
	{"01;&", 'F'},
	{"01;(", 'F'},
	{"01;)", 'F'},
	{"01;,", 'F'},
	{"01;.", 'F'},
	{"01;1", 'F'},
	{"01;:", 'F'},
	{"01;;", 'F'},
	{"01;?", 'F'},
	{"01;A", 'F'},
	{"01;B", 'F'},
	{"01;C", 'F'},
	{"01;E", 'F'},
	{"01;F", 'F'},
	{"01;K", 'F'},
	{"01;N", 'F'},
	{"01;O", 'F'},
	{"01;S", 'F'},
	{"01;T", 'F'},
	{"01;U", 'F'},
	{"01;V", 'F'},
	{"01;X", 'F'},
	{"01;\\", 'F'},
	{"01;{", 'F'},
	{"01;}", 'F'},
	{"01?", 'F'},
	{"01?&", 'F'},
	{"01?(", 'F'},
	{"01?)", 'F'},
	{"01?,", 'F'},
	{"01?.", 'F'},
	{"01?1", 'F'},
	{"01?:", 'F'},
	{"01?;", 'F'},
	{"01??", 'F'},
	{"01?A", 'F'},
	{"01?B", 'F'},
	{"01?C", 'F'},
	{"01?E", 'F'},
	{"01?F", 'F'},
	{"01?K", 'F'},
	{"01?N", 'F'},
	{"01?O", 'F'},
	{"01?S", 'F'},
	{"01?T", 'F'},
	{"01?U", 'F'},
	{"01?V", 'F'},
	{"01?X", 'F'},
	{"01?\\", 'F'},
	{"01?{", 'F'},
	{"01?}", 'F'},
	{"01A", 'F'},
	{"01A&", 'F'},
	{"01A(", 'F'},
	{"01A)", 'F'},
	{"01A,", 'F'},
	{"01A.", 'F'},
	{"01A1", 'F'},
	{"01A:", 'F'},
	{"01A;", 'F'},
	{"01A?", 'F'},
	{"01AA", 'F'},
	{"01AB", 'F'},
	{"01AC", 'F'},
	{"01AE", 'F'},
	{"01AF", 'F'},
	{"01AK", 'F'},
	{"01AN", 'F'},
	{"01AO", 'F'},
	{"01AS", 'F'},
	{"01AT", 'F'},
	{"01AU", 'F'},
	{"01AV", 'F'},
	{"01AX", 'F'},
	{"01A\\", 'F'},
	{"01A{", 'F'},
	{"01A}", 'F'},
	{"01B", 'F'},
	{"01B&", 'F'},
	{"01B(", 'F'},
	{"01B)", 'F'},
	{"01B,", 'F'},
	{"01B.", 'F'},
	{"01B1", 'F'},
	{"01B:", 'F'},
	{"01B;", 'F'},
	{"01B?", 'F'},
	{"01BA", 'F'},
	{"01BB", 'F'},
	{"01BC", 'F'},
	{"01BE", 'F'},
	{"01BF", 'F'},
	{"01BK", 'F'},
	{"01BN", 'F'},
	{"01BO", 'F'},
	{"01BS", 'F'},
	{"01BT", 'F'},
	{"01BU", 'F'},
	{"01BV", 'F'},
	{"01BX", 'F'},
	{"01B\\", 'F'},
	{"01B{", 'F'},
	{"01B}", 'F'},
	{"01C", 'F'},
	{"01C&", 'F'},
	{"01C(", 'F'},
	{"01C)", 'F'},
	{"01C,", 'F'},
	{"01C.", 'F'},
	{"01C1", 'F'},
	{"01C:", 'F'},
	{"01C;", 'F'},
	{"01C?", 'F'},
	{"01CA", 'F'},
	{"01CB", 'F'},
	{"01CC", 'F'},
	{"01CE", 'F'},
	{"01CF", 'F'},
	{"01CK", 'F'},
	{"01CN", 'F'},
	{"01CO", 'F'},
	{"01CS", 'F'},
	{"01CT", 'F'},
	{"01CU", 'F'},
	{"01CV", 'F'},
	{"01CX", 'F'},
	{"01C\\", 'F'},
	{"01C{", 'F'},
	{"01C}", 'F'},
	{"01E", 'F'},
	{"01E&", 'F'},
	{"01E(", 'F'},
	{"01E)", 'F'},
	{"01E,", 'F'},
	{"01E.", 'F'},
	{"01E1", 'F'},
	{"01E:", 'F'},
	{"01E;", 'F'},
	{"01E?", 'F'},
	{"01EA", 'F'},
	{"01EB", 'F'},
	{"01EC", 'F'},
	{"01EE", 'F'},
	{"01EF", 'F'},
	{"01EK", 'F'},
	{"01EN", 'F'},
	{"01EO", 'F'},
	{"01ES", 'F'},
	{"01ET", 'F'},
	{"01EU", 'F'},
	{"01EV", 'F'},
	{"01EX", 'F'},
	{"01E\\", 'F'},
	{"01E{", 'F'},
	{"01E}", 'F'},
	{"01F", 'F'},
	{"01F&", 'F'},
	{"01F(", 'F'},
	{"01F)", 'F'},
	{"01F,", 'F'},
	{"01F.", 'F'},
	{"01F1", 'F'},
	{"01F:", 'F'},
	{"01F;", 'F'},
	{"01F?", 'F'},
	{"01FA", 'F'},
	{"01FB", 'F'},
	{"01FC", 'F'},
	{"01FE", 'F'},
	{"01FF", 'F'},
	{"01FK", 'F'},
	{"01FN", 'F'},
	{"01FO", 'F'},
	{"01FS", 'F'},
	{"01FT", 'F'},
	{"01FU", 'F'},
	{"01FV", 'F'},
	{"01FX", 'F'},
	{"01F\\", 'F'},
	{"01F{", 'F'},
	{"01F}", 'F'},
	{"01K", 'F'},
	{"01K&", 'F'},
	{"01K(", 'F'},
	{"01K)", 'F'},
	{"01K,", 'F'},
	{"01K.", 'F'},
	{"01K1", 'F'},
	{"01K:", 'F'},
	{"01K;", 'F'},
	{"01K?", 'F'},
	{"01KA", 'F'},
	{"01KB", 'F'},
	{"01KC", 'F'},
	{"01KE", 'F'},
	{"01KF", 'F'},
	{"01KK", 'F'},
	{"01KN", 'F'},
	{"01KO", 'F'},
	{"01KS", 'F'},
	{"01KT", 'F'},
	{"01KU", 'F'},
	{"01KV", 'F'},
	{"01KX", 'F'},
	{"01K\\", 'F'},
	{"01K{", 'F'},
	{"01K}", 'F'},
	{"01N", 'F'},
	{"01N&", 'F'},
	{"01N(", 'F'},
	{"01N)", 'F'},
	{"01N,", 'F'},
	{"01N.", 'F'},
	{"01N1", 'F'},
	{"01N:", 'F'},
	{"01N;", 'F'},
	{"01N?", 'F'},
	{"01NA", 'F'},
	{"01NB", 'F'},
	{"01NC", 'F'},
	{"01NE", 'F'},
	{"01NF", 'F'},
	{"01NK", 'F'},
	{"01NN", 'F'},
	{"01NO", 'F'},
	{"01NS", 'F'},
	{"01NT", 'F'},
	{"01NU", 'F'},
	{"01NV", 'F'},
	{"01NX", 'F'},
	{"01N\\", 'F'},
	{"01N{", 'F'},
	{"01N}", 'F'},
	{"01O", 'F'},
	{"01O&", 'F'},
	{"01O(", 'F'},
	{"01O)", 'F'},
	{"01O,", 'F'},
	{"01O.", 'F'},
	{"01O1", 'F'},
	{"01O:", 'F'},
	{"01O;", 'F'},
	{"01O?", 'F'},
	{"01OA", 'F'},
	{"01OB", 'F'},
	{"01OC", 'F'},
	{"01OE", 'F'},
	{"01OF", 'F'},
	{"01OK", 'F'},
	{"01ON", 'F'},
	{"01OO", 'F'},
	{"01OS", 'F'},
	{"01OT", 'F'},
	{"01OU", 'F'},
	{"01OV", 'F'},
	{"01OX", 'F'},
	{"01O\\", 'F'},
	{"01O{", 'F'},
	{"01O}", 'F'},
	{"01S", 'F'},
	{"01S&", 'F'},
	{"01S(", 'F'},
	{"01S)", 'F'},
	{"01S,", 'F'},
	{"01S.", 'F'},
	{"01S1", 'F'},
	{"01S:", 'F'},
	{"01S;", 'F'},
	{"01S?", 'F'},
	{"01SA", 'F'},
	{"01SB", 'F'},
	{"01SC", 'F'},
	{"01SE", 'F'},
	{"01SF", 'F'},
	{"01SK", 'F'},
	{"01SN", 'F'},
	{"01SO", 'F'},
	{"01SS", 'F'},
	{"01ST", 'F'},
	{"01SU", 'F'},
	{"01SV", 'F'},
	{"01SX", 'F'},
	{"01S\\", 'F'},
	{"01S{", 'F'},
	{"01S}", 'F'},
	{"01T", 'F'},
	{"01T&", 'F'},
	{"01T(", 'F'},
	{"01T)", 'F'},
	{"01T,", 'F'},
	{"01T.", 'F'},
	{"01T1", 'F'},
	{"01T:", 'F'},
	{"01T;", 'F'},
	{"01T?", 'F'},
	{"01TA", 'F'},
	{"01TB", 'F'},
	{"01TC", 'F'},
	{"01TE", 'F'},
	{"01TF", 'F'},
	{"01TK", 'F'},
	{"01TN", 'F'},
	{"01TO", 'F'},
	{"01TS", 'F'},
	{"01TT", 'F'},
	{"01TU", 'F'},
	{"01TV", 'F'},
	{"01TX", 'F'},
	{"01T\\", 'F'},
	{"01T{", 'F'},
	{"01T}", 'F'},
	{"01U", 'F'},
	{"01U&", 'F'},
	{"01U(", 'F'},
	{"01U)", 'F'},
	{"01U,", 'F'},
	{"01U.", 'F'},
	{"01U1", 'F'},
	{"01U:", 'F'},
	{"01U;", 'F'},
	{"01U?", 'F'},
	{"01UA", 'F'},
	{"01UB", 'F'},
	{"01UC", 'F'},
	{"01UE", 'F'},
	{"01UF", 'F'},
	{"01UK", 'F'},
	{"01UN", 'F'},
	{"01UO", 'F'},
	{"01US", 'F'},
	{"01UT", 'F'},
	{"01UU", 'F'},
	{"01UV", 'F'},
	{"01UX", 'F'},
	{"01U\\", 'F'},
	{"01U{", 'F'},
	{"01U}", 'F'},
	{"01V", 'F'},
	{"01V&", 'F'},
	{"01V(", 'F'},
	{"01V)", 'F'},
	{"01V,", 'F'},
	{"01V.", 'F'},
	{"01V1", 'F'},
	{"01V:", 'F'},
	{"01V;", 'F'},
	{"01V?", 'F'},
	{"01VA", 'F'},
	{"01VB", 'F'},
	{"01VC", 'F'},
	{"01VE", 'F'},
	{"01VF", 'F'},
	{"01VK", 'F'},
	{"01VN", 'F'},
	{"01VO", 'F'},
	{"01VS", 'F'},
	{"01VT", 'F'},
	{"01VU", 'F'},
	{"01VV", 'F'},
	{"01VX", 'F'},
	{"01V\\", 'F'},
	{"01V{", 'F'},
	{"01V}", 'F'},
	{"01X", 'F'},
	{"01X&", 'F'},
	{"01X(", 'F'},
	{"01X)", 'F'},
	{"01X,", 'F'},
	{"01X.", 'F'},
	{"01X1", 'F'},
	{"01X:", 'F'},
	{"01X;", 'F'},
	{"01X?", 'F'},
	{"01XA", 'F'},
	{"01XB", 'F'},
	{"01XC", 'F'},
	{"01XE", 'F'},
	{"01XF", 'F'},
	{"01XK", 'F'},
	{"01XN", 'F'},
	{"01XO", 'F'},
	{"01XS", 'F'},
	{"01XT", 'F'},
	{"01XU", 'F'},
	{"01XV", 'F'},
	{"01XX", 'F'},
	{"01X\\", 'F'},
	{"01X{", 'F'},
	{"01X}", 'F'},
	{"01\\", 'F'},
	{"01\\&", 'F'},
	{"01\\(", 'F'},
	{"01\\)", 'F'},
	{"01\\,", 'F'},
	{"01\\.", 'F'},
	{"01\\1", 'F'},
	{"01\\:", 'F'},
	{"01\\;", 'F'},
	{"01\\?", 'F'},
	{"01\\A", 'F'},
	{"01\\B", 'F'},
	{"01\\C", 'F'},
	{"01\\E", 'F'},
	{"01\\F", 'F'},
	{"01\\K", 'F'},
	{"01\\N", 'F'},
	{"01\\O", 'F'},
	{"01\\S", 'F'},
	{"01\\T", 'F'},
	{"01\\U", 'F'},
	{"01\\V", 'F'},
	{"01\\X", 'F'},
	{"01\\\\", 'F'},
	{"01\\{", 'F'},
	{"01\\}", 'F'},
	{"01{", 'F'},
	{"01{&", 'F'},
	{"01{(", 'F'},
	{"01{)", 'F'},
	{"01{,", 'F'},
	{"01{.", 'F'},
	{"01{1", 'F'},
	{"01{:", 'F'},
	{"01{;", 'F'},
	{"01{?", 'F'},
	{"01{A", 'F'},
	{"01{B", 'F'},
	{"01{C", 'F'},
	{"01{E", 'F'},
	{"01{F", 'F'},
	{"01{K", 'F'},
	{"01{N", 'F'},
	{"01{O", 'F'},
	{"01{S", 'F'},
	{"01{T", 'F'},
	{"01{U", 'F'},
	{"01{V", 'F'},
	{"01{X", 'F'},
	{"01{\\", 'F'},
	{"01{{", 'F'},
	{"01{}", 'F'},
	{"01}", 'F'},
	{"01}&", 'F'},
	{"01}(", 'F'},
	{"01})", 'F'},
	{"01},", 'F'},
	{"01}.", 'F'},
	{"01}1", 'F'},
	{"01}:", 'F'},
	{"01};", 'F'},
	{"01}?", 'F'},
	{"01}A", 'F'},
	{"01}B", 'F'},
	{"01}C", 'F'},
	{"01}E", 'F'},
	{"01}F", 'F'},
	{"01}K", 'F'},
	{"01}N", 'F'},
	{"01}O", 'F'},
	{"01}S", 'F'},
	{"01}T", 'F'},
	{"01}U", 'F'},
	{"01}V", 'F'},
	{"01}X", 'F'},
	{"01}\\", 'F'},
	{"01}{", 'F'},
	{"01}}", 'F'},
	{"0:&", 'F'},
	{"0:(", 'F'},
	{"0:)", 'F'},
	{"0:,", 'F'},
	{"0:.", 'F'},
	{"0:1", 'F'},
	{"0::", 'F'},
	{"0:;", 'F'},
	{"0:?", 'F'},
	{"0:A", 'F'},
	{"0:B", 'F'},
	{"0:C", 'F'},
	{"0:E", 'F'},
	{"0:F", 'F'},
	{"0:K", 'F'},
	{"0:N", 'F'},
	{"0:O", 'F'},
	{"0:S", 'F'},
	{"0:T", 'F'},
	{"0:U", 'F'},
	{"0:V", 'F'},
	{"0:X", 'F'},
	{"0:\\", 'F'},
	{"0:{", 'F'},
	{"0:}", 'F'},
	{"0;&", 'F'},
	{"0;(", 'F'},
	{"0;)", 'F'},
	{"0;,", 'F'},
	{"0;.", 'F'},
	{"0;1", 'F'},
	{"0;:", 'F'},
	{"0;;", 'F'},
	{"0;?", 'F'},
	{"0;A", 'F'},
	{"0;B", 'F'},
	{"0;C", 'F'},
	{"0;E", 'F'},
	{"0;F", 'F'},
	{"0;K", 'F'},
	{"0;N", 'F'},
	{"0;O", 'F'},
	{"0;S", 'F'},
	{"0;T", 'F'},
	{"0;U", 'F'},
	{"0;V", 'F'},
	{"0;X", 'F'},
	{"0;\\", 'F'},
	{"0;{", 'F'},
	{"0;}", 'F'},
	{"0?&", 'F'},
	{"0?(", 'F'},
	{"0?)", 'F'},
	{"0?,", 'F'},
	{"0?.", 'F'},
	{"0?1", 'F'},
	{"0?:", 'F'},
	{"0?;", 'F'},
	{"0??", 'F'},
	{"0?A", 'F'},
	{"0?B", 'F'},
	{"0?C", 'F'},
	{"0?E", 'F'},
	{"0?F", 'F'},
	{"0?K", 'F'},
	{"0?N", 'F'},
	{"0?O", 'F'},
	{"0?S", 'F'},
	{"0?T", 'F'},
	{"0?U", 'F'},
	{"0?V", 'F'},
	{"0?X", 'F'},
	{"0?\\", 'F'},
	{"0?{", 'F'},
	{"0?}", 'F'},
	{"0A&", 'F'},
	{"0A(", 'F'},
	{"0A)", 'F'},
	{"0A,", 'F'},
	{"0A.", 'F'},
	{"0A1", 'F'},
	{"0A:", 'F'},
	{"0A;", 'F'},
	{"0A?", 'F'},
	{"0AA", 'F'},
	{"0AB", 'F'},
	{"0AC", 'F'},
	{"0AE", 'F'},
	{"0AF", 'F'},
	{"0AK", 'F'},
	{"0AN", 'F'},
	{"0AO", 'F'},
	{"0AS", 'F'},
	{"0AT", 'F'},
	{"0AU", 'F'},
	{"0AV", 'F'},
	{"0AX", 'F'},
	{"0A\\", 'F'},
	{"0A{", 'F'},
	{"0A}", 'F'},
	{"0B&", 'F'},
	{"0B(", 'F'},
	{"0B)", 'F'},
	{"0B,", 'F'},
	{"0B.", 'F'},
	{"0B1", 'F'},
	{"0B:", 'F'},
	{"0B;", 'F'},
	{"0B?", 'F'},
	{"0BA", 'F'},
	{"0BB", 'F'},
	{"0BC", 'F'},
	{"0BE", 'F'},
	{"0BF", 'F'},
	{"0BK", 'F'},
	{"0BN", 'F'},
	{"0BO", 'F'},
	{"0BS", 'F'},
	{"0BT", 'F'},
	{"0BU", 'F'},
	{"0BV", 'F'},
	{"0BX", 'F'},
	{"0B\\", 'F'},
	{"0B{", 'F'},
	{"0B}", 'F'},
	{"0C&", 'F'},
	{"0C&&", 'F'},
	{"0C&(", 'F'},
	{"0C&)", 'F'},
	{"0C&,", 'F'},
	{"0C&.", 'F'},
	{"0C&1", 'F'},
	{"0C&:", 'F'},
	{"0C&;", 'F'},
	{"0C&?", 'F'},
	{"0C&A", 'F'},
	{"0C&B", 'F'},
	{"0C&C", 'F'},
	{"0C&E", 'F'},
	{"0C&F", 'F'},
	{"0C&K", 'F'},
	{"0C&N", 'F'},
	{"0C&O", 'F'},
	{"0C&S", 'F'},
	{"0C&T", 'F'},
	{"0C&U", 'F'},
	{"0C&V", 'F'},
	{"0C&X", 'F'},
	{"0C&\\", 'F'},
	{"0C&{", 'F'},
	{"0C&}", 'F'},
	{"0C(", 'F'},
	{"0C(&", 'F'},
	{"0C((", 'F'},
	{"0C()", 'F'},
	{"0C(,", 'F'},
	{"0C(.", 'F'},
	{"0C(1", 'F'},
	{"0C(:", 'F'},
	{"0C(;", 'F'},
	{"0C(?", 'F'},
	{"0C(A", 'F'},
	{"0C(B", 'F'},
	{"0C(C", 'F'},
	{"0C(E", 'F'},
	{"0C(F", 'F'},
	{"0C(K", 'F'},
	{"0C(N", 'F'},
	{"0C(O", 'F'},
	{"0C(S", 'F'},
	{"0C(T", 'F'},
	{"0C(U", 'F'},
	{"0C(V", 'F'},
	{"0C(X", 'F'},
	{"0C(\\", 'F'},
	{"0C({", 'F'},
	{"0C(}", 'F'},
	{"0C)", 'F'},
	{"0C)&", 'F'},
	{"0C)(", 'F'},
	{"0C))", 'F'},
	{"0C),", 'F'},
	{"0C).", 'F'},
	{"0C)1", 'F'},
	{"0C):", 'F'},
	{"0C);", 'F'},
	{"0C)?", 'F'},
	{"0C)A", 'F'},
	{"0C)B", 'F'},
	{"0C)C", 'F'},
	{"0C)E", 'F'},
	{"0C)F", 'F'},
	{"0C)K", 'F'},
	{"0C)N", 'F'},
	{"0C)O", 'F'},
	{"0C)S", 'F'},
	{"0C)T", 'F'},
	{"0C)U", 'F'},
	{"0C)V", 'F'},
	{"0C)X", 'F'},
	{"0C)\\", 'F'},
	{"0C){", 'F'},
	{"0C)}", 'F'},
	{"0C,", 'F'},
	{"0C,&", 'F'},
	{"0C,(", 'F'},
	{"0C,)", 'F'},
	{"0C,,", 'F'},
	{"0C,.", 'F'},
	{"0C,1", 'F'},
	{"0C,:", 'F'},
	{"0C,;", 'F'},
	{"0C,?", 'F'},
	{"0C,A", 'F'},
	{"0C,B", 'F'},
	{"0C,C", 'F'},
	{"0C,E", 'F'},
	{"0C,F", 'F'},
	{"0C,K", 'F'},
	{"0C,N", 'F'},
	{"0C,O", 'F'},
	{"0C,S", 'F'},
	{"0C,T", 'F'},
	{"0C,U", 'F'},
	{"0C,V", 'F'},
	{"0C,X", 'F'},
	{"0C,\\", 'F'},
	{"0C,{", 'F'},
	{"0C,}", 'F'},
	{"0C.", 'F'},
	{"0C.&", 'F'},
	{"0C.(", 'F'},
	{"0C.)", 'F'},
	{"0C.,", 'F'},
	{"0C..", 'F'},
	{"0C.1", 'F'},
	{"0C.:", 'F'},
	{"0C.;", 'F'},
	{"0C.?", 'F'},
	{"0C.A", 'F'},
	{"0C.B", 'F'},
	{"0C.C", 'F'},
	{"0C.E", 'F'},
	{"0C.F", 'F'},
	{"0C.K", 'F'},
	{"0C.N", 'F'},
	{"0C.O", 'F'},
	{"0C.S", 'F'},
	{"0C.T", 'F'},
	{"0C.U", 'F'},
	{"0C.V", 'F'},
	{"0C.X", 'F'},
	{"0C.\\", 'F'},
	{"0C.{", 'F'},
	{"0C.}", 'F'},
	{"0C1", 'F'},
	{"0C1&", 'F'},
	{"0C1(", 'F'},
	{"0C1)", 'F'},
	{"0C1,", 'F'},
	{"0C1.", 'F'},
	{"0C11", 'F'},
	{"0C1:", 'F'},
	{"0C1;", 'F'},
	{"0C1?", 'F'},
	{"0C1A", 'F'},
	{"0C1B", 'F'},
	{"0C1C", 'F'},
	{"0C1E", 'F'},
	{"0C1F", 'F'},
	{"0C1K", 'F'},
	{"0C1N", 'F'},
	{"0C1O", 'F'},
	{"0C1S", 'F'},
	{"0C1T", 'F'},
	{"0C1U", 'F'},
	{"0C1V", 'F'},
	{"0C1X", 'F'},
	{"0C1\\", 'F'},
	{"0C1{", 'F'},
	{"0C1}", 'F'},
	{"0C:", 'F'},
	{"0C:&", 'F'},
	{"0C:(", 'F'},
	{"0C:)", 'F'},
	{"0C:,", 'F'},
	{"0C:.", 'F'},
	{"0C:1", 'F'},
	{"0C::", 'F'},
	{"0C:;", 'F'},
	{"0C:?", 'F'},
	{"0C:A", 'F'},
	{"0C:B", 'F'},
	{"0C:C", 'F'},
	{"0C:E", 'F'},
	{"0C:F", 'F'},
	{"0C:K", 'F'},
	{"0C:N", 'F'},
	{"0C:O", 'F'},
	{"0C:S", 'F'},
	{"0C:T", 'F'},
	{"0C:U", 'F'},
	{"0C:V", 'F'},
	{"0C:X", 'F'},
	{"0C:\\", 'F'},
	{"0C:{", 'F'},
	{"0C:}", 'F'},
	{"0C;", 'F'},
	{"0C;&", 'F'},
	{"0C;(", 'F'},
	{"0C;)", 'F'},
	{"0C;,", 'F'},
	{"0C;.", 'F'},
	{"0C;1", 'F'},
	{"0C;:", 'F'},
	{"0C;;", 'F'},
	{"0C;?", 'F'},
	{"0C;A", 'F'},
	{"0C;B", 'F'},
	{"0C;C", 'F'},
	{"0C;E", 'F'},
	{"0C;F", 'F'},
	{"0C;K", 'F'},
	{"0C;N", 'F'},
	{"0C;O", 'F'},
	{"0C;S", 'F'},
	{"0C;T", 'F'},
	{"0C;U", 'F'},
	{"0C;V", 'F'},
	{"0C;X", 'F'},
	{"0C;\\", 'F'},
	{"0C;{", 'F'},
	{"0C;}", 'F'},
	{"0C?", 'F'},
	{"0C?&", 'F'},
	{"0C?(", 'F'},
	{"0C?)", 'F'},
	{"0C?,", 'F'},
	{"0C?.", 'F'},
	{"0C?1", 'F'},
	{"0C?:", 'F'},
	{"0C?;", 'F'},
	{"0C??", 'F'},
	{"0C?A", 'F'},
	{"0C?B", 'F'},
	{"0C?C", 'F'},
	{"0C?E", 'F'},
	{"0C?F", 'F'},
	{"0C?K", 'F'},
	{"0C?N", 'F'},
	{"0C?O", 'F'},
	{"0C?S", 'F'},
	{"0C?T", 'F'},
	{"0C?U", 'F'},
	{"0C?V", 'F'},
	{"0C?X", 'F'},
	{"0C?\\", 'F'},
	{"0C?{", 'F'},
	{"0C?}", 'F'},
	{"0CA", 'F'},
	{"0CA&", 'F'},
	{"0CA(", 'F'},
	{"0CA)", 'F'},
	{"0CA,", 'F'},
	{"0CA.", 'F'},
	{"0CA1", 'F'},
	{"0CA:", 'F'},
	{"0CA;", 'F'},
	{"0CA?", 'F'},
	{"0CAA", 'F'},
	{"0CAB", 'F'},
	{"0CAC", 'F'},
	{"0CAE", 'F'},
	{"0CAF", 'F'},
	{"0CAK", 'F'},
	{"0CAN", 'F'},
	{"0CAO", 'F'},
	{"0CAS", 'F'},
	{"0CAT", 'F'},
	{"0CAU", 'F'},
	{"0CAV", 'F'},
	{"0CAX", 'F'},
	{"0CA\\", 'F'},
	{"0CA{", 'F'},
	{"0CA}", 'F'},
	{"0CB", 'F'},
	{"0CB&", 'F'},
	{"0CB(", 'F'},
	{"0CB)", 'F'},
	{"0CB,", 'F'},
	{"0CB.", 'F'},
	{"0CB1", 'F'},
	{"0CB:", 'F'},
	{"0CB;", 'F'},
	{"0CB?", 'F'},
	{"0CBA", 'F'},
	{"0CBB", 'F'},
	{"0CBC", 'F'},
	{"0CBE", 'F'},
	{"0CBF", 'F'},
	{"0CBK", 'F'},
	{"0CBN", 'F'},
	{"0CBO", 'F'},
	{"0CBS", 'F'},
	{"0CBT", 'F'},
	{"0CBU", 'F'},
	{"0CBV", 'F'},
	{"0CBX", 'F'},
	{"0CB\\", 'F'},
	{"0CB{", 'F'},
	{"0CB}", 'F'},
	{"0CC", 'F'},
	{"0CC&", 'F'},
	{"0CC(", 'F'},
	{"0CC)", 'F'},
	{"0CC,", 'F'},
	{"0CC.", 'F'},
	{"0CC1", 'F'},
	{"0CC:", 'F'},
	{"0CC;", 'F'},
	{"0CC?", 'F'},
	{"0CCA", 'F'},
	{"0CCB", 'F'},
	{"0CCC", 'F'},
	{"0CCE", 'F'},
	{"0CCF", 'F'},
	{"0CCK", 'F'},
	{"0CCN", 'F'},
	{"0CCO", 'F'},
	{"0CCS", 'F'},
	{"0CCT", 'F'},
	{"0CCU", 'F'},
	{"0CCV", 'F'},
	{"0CCX", 'F'},
	{"0CC\\", 'F'},
	{"0CC{", 'F'},
	{"0CC}", 'F'},
	{"0CE", 'F'},
	{"0CE&", 'F'},
	{"0CE(", 'F'},
	{"0CE)", 'F'},
	{"0CE,", 'F'},
	{"0CE.", 'F'},
	{"0CE1", 'F'},
	{"0CE:", 'F'},
	{"0CE;", 'F'},
	{"0CE?", 'F'},
	{"0CEA", 'F'},
	{"0CEB", 'F'},
	{"0CEC", 'F'},
	{"0CEE", 'F'},
	{"0CEF", 'F'},
	{"0CEK", 'F'},
	{"0CEN", 'F'},
	{"0CEO", 'F'},
	{"0CES", 'F'},
	{"0CET", 'F'},
	{"0CEU", 'F'},
	{"0CEV", 'F'},
	{"0CEX", 'F'},
	{"0CE\\", 'F'},
	{"0CE{", 'F'},
	{"0CE}", 'F'},
	{"0CF", 'F'},
	{"0CF&", 'F'},
	{"0CF(", 'F'},
	{"0CF)", 'F'},
	{"0CF,", 'F'},
	{"0CF.", 'F'},
	{"0CF1", 'F'},
	{"0CF:", 'F'},
	{"0CF;", 'F'},
	{"0CF?", 'F'},
	{"0CFA", 'F'},
	{"0CFB", 'F'},
	{"0CFC", 'F'},
	{"0CFE", 'F'},
	{"0CFF", 'F'},
	{"0CFK", 'F'},
	{"0CFN", 'F'},
	{"0CFO", 'F'},
	{"0CFS", 'F'},
	{"0CFT", 'F'},
	{"0CFU", 'F'},
	{"0CFV", 'F'},
	{"0CFX", 'F'},
	{"0CF\\", 'F'},
	{"0CF{", 'F'},
	{"0CF}", 'F'},
	{"0CK", 'F'},
	{"0CK&", 'F'},
	{"0CK(", 'F'},
	{"0CK)", 'F'},
	{"0CK,", 'F'},
	{"0CK.", 'F'},
	{"0CK1", 'F'},
	{"0CK:", 'F'},
	{"0CK;", 'F'},
	{"0CK?", 'F'},
	{"0CKA", 'F'},
	{"0CKB", 'F'},
	{"0CKC", 'F'},
	{"0CKE", 'F'},
	{"0CKF", 'F'},
	{"0CKK", 'F'},
	{"0CKN", 'F'},
	{"0CKO", 'F'},
	{"0CKS", 'F'},
	{"0CKT", 'F'},
	{"0CKU", 'F'},
	{"0CKV", 'F'},
	{"0CKX", 'F'},
	{"0CK\\", 'F'},
	{"0CK{", 'F'},
	{"0CK}", 'F'},
	{"0CN", 'F'},
	{"0CN&", 'F'},
	{"0CN(", 'F'},
	{"0CN)", 'F'},
	{"0CN,", 'F'},
	{"0CN.", 'F'},
	{"0CN1", 'F'},
	{"0CN:", 'F'},
	{"0CN;", 'F'},
	{"0CN?", 'F'},
	{"0CNA", 'F'},
	{"0CNB", 'F'},
	{"0CNC", 'F'},
	{"0CNE", 'F'},
	{"0CNF", 'F'},
	{"0CNK", 'F'},
	{"0CNN", 'F'},
	{"0CNO", 'F'},
	{"0CNS", 'F'},
	{"0CNT", 'F'},
	{"0CNU", 'F'},
	{"0CNV", 'F'},
	{"0CNX", 'F'},
	{"0CN\\", 'F'},
	{"0CN{", 'F'},
	{"0CN}", 'F'},
	{"0CO", 'F'},
	{"0CO&", 'F'},
	{"0CO(", 'F'},
	{"0CO)", 'F'},
	{"0CO,", 'F'},
	{"0CO.", 'F'},
	{"0CO1", 'F'},
	{"0CO:", 'F'},
	{"0CO;", 'F'},
	{"0CO?", 'F'},
	{"0COA", 'F'},
	{"0COB", 'F'},
	{"0COC", 'F'},
	{"0COE", 'F'},
	{"0COF", 'F'},
	{"0COK", 'F'},
	{"0CON", 'F'},
	{"0COO", 'F'},
	{"0COS", 'F'},
	{"0COT", 'F'},
	{"0COU", 'F'},
	{"0COV", 'F'},
	{"0COX", 'F'},
	{"0CO\\", 'F'},
	{"0CO{", 'F'},
	{"0CO}", 'F'},
	{"0CS", 'F'},
	{"0CS&", 'F'},
	{"0CS(", 'F'},
	{"0CS)", 'F'},
	{"0CS,", 'F'},
	{"0CS.", 'F'},
	{"0CS1", 'F'},
	{"0CS:", 'F'},
	{"0CS;", 'F'},
	{"0CS?", 'F'},
	{"0CSA", 'F'},
	{"0CSB", 'F'},
	{"0CSC", 'F'},
	{"0CSE", 'F'},
	{"0CSF", 'F'},
	{"0CSK", 'F'},
	{"0CSN", 'F'},
	{"0CSO", 'F'},
	{"0CSS", 'F'},
	{"0CST", 'F'},
	{"0CSU", 'F'},
	{"0CSV", 'F'},
	{"0CSX", 'F'},
	{"0CS\\", 'F'},
	{"0CS{", 'F'},
	{"0CS}", 'F'},
	{"0CT", 'F'},
	{"0CT&", 'F'},
	{"0CT(", 'F'},
	{"0CT)", 'F'},
	{"0CT,", 'F'},
	{"0CT.", 'F'},
	{"0CT1", 'F'},
	{"0CT:", 'F'},
	{"0CT;", 'F'},
	{"0CT?", 'F'},
	{"0CTA", 'F'},
	{"0CTB", 'F'},
	{"0CTC", 'F'},
	{"0CTE", 'F'},
	{"0CTF", 'F'},
	{"0CTK", 'F'},
	{"0CTN", 'F'},
	{"0CTO", 'F'},
	{"0CTS", 'F'},
	{"0CTT", 'F'},
	{"0CTU", 'F'},
	{"0CTV", 'F'},
	{"0CTX", 'F'},
	{"0CT\\", 'F'},
	{"0CT{", 'F'},
	{"0CT}", 'F'},
	{"0CU", 'F'},
	{"0CU&", 'F'},
	{"0CU(", 'F'},
	{"0CU)", 'F'},
	{"0CU,", 'F'},
	{"0CU.", 'F'},
	{"0CU1", 'F'},
	{"0CU:", 'F'},
	{"0CU;", 'F'},
	{"0CU?", 'F'},
	{"0CUA", 'F'},
	{"0CUB", 'F'},
	{"0CUC", 'F'},
	{"0CUE", 'F'},
	{"0CUF", 'F'},
	{"0CUK", 'F'},
	{"0CUN", 'F'},
	{"0CUO", 'F'},
	{"0CUS", 'F'},
	{"0CUT", 'F'},
	{"0CUU", 'F'},
	{"0CUV", 'F'},
	{"0CUX", 'F'},
	{"0CU\\", 'F'},
	{"0CU{", 'F'},
	{"0CU}", 'F'},
	{"0CV", 'F'},
	{"0CV&", 'F'},
	{"0CV(", 'F'},
	{"0CV)", 'F'},
	{"0CV,", 'F'},
	{"0CV.", 'F'},
	{"0CV1", 'F'},
	{"0CV:", 'F'},
	{"0CV;", 'F'},
	{"0CV?", 'F'},
	{"0CVA", 'F'},
	{"0CVB", 'F'},
	{"0CVC", 'F'},
	{"0CVE", 'F'},
	{"0CVF", 'F'},
	{"0CVK", 'F'},
	{"0CVN", 'F'},
	{"0CVO", 'F'},
	{"0CVS", 'F'},
	{"0CVT", 'F'},
	{"0CVU", 'F'},
	{"0CVV", 'F'},
	{"0CVX", 'F'},
	{"0CV\\", 'F'},
	{"0CV{", 'F'},
	{"0CV}", 'F'},
	{"0CX", 'F'},
	{"0CX&", 'F'},
	{"0CX(", 'F'},
	{"0CX)", 'F'},
	{"0CX,", 'F'},
	{"0CX.", 'F'},
	{"0CX1", 'F'},
	{"0CX:", 'F'},
	{"0CX;", 'F'},
	{"0CX?", 'F'},
	{"0CXA", 'F'},
	{"0CXB", 'F'},
	{"0CXC", 'F'},
	{"0CXE", 'F'},
	{"0CXF", 'F'},
	{"0CXK", 'F'},
	{"0CXN", 'F'},
	{"0CXO", 'F'},
	{"0CXS", 'F'},
	{"0CXT", 'F'},
	{"0CXU", 'F'},
	{"0CXV", 'F'},
	{"0CXX", 'F'},
	{"0CX\\", 'F'},
	{"0CX{", 'F'},
	{"0CX}", 'F'},
	{"0C\\", 'F'},
	{"0C\\&", 'F'},
	{"0C\\(", 'F'},
	{"0C\\)", 'F'},
	{"0C\\,", 'F'},
	{"0C\\.", 'F'},
	{"0C\\1", 'F'},
	{"0C\\:", 'F'},
	{"0C\\;", 'F'},
	{"0C\\?", 'F'},
	{"0C\\A", 'F'},
	{"0C\\B", 'F'},
	{"0C\\C", 'F'},
	{"0C\\E", 'F'},
	{"0C\\F", 'F'},
	{"0C\\K", 'F'},
	{"0C\\N", 'F'},
	{"0C\\O", 'F'},
	{"0C\\S", 'F'},
	{"0C\\T", 'F'},
	{"0C\\U", 'F'},
	{"0C\\V", 'F'},
	{"0C\\X", 'F'},
	{"0C\\\\", 'F'},
	{"0C\\{", 'F'},
	{"0C\\}", 'F'},
	{"0C{", 'F'},
	{"0C{&", 'F'},
	{"0C{(", 'F'},
	{"0C{)", 'F'},
	{"0C{,", 'F'},
	{"0C{.", 'F'},
	{"0C{1", 'F'},
	{"0C{:", 'F'},
	{"0C{;", 'F'},
	{"0C{?", 'F'},
	{"0C{A", 'F'},
	{"0C{B", 'F'},
	{"0C{C", 'F'},
	{"0C{E", 'F'},
	{"0C{F", 'F'},
	{"0C{K", 'F'},
	{"0C{N", 'F'},
	{"0C{O", 'F'},
	{"0C{S", 'F'},
	{"0C{T", 'F'},
	{"0C{U", 'F'},
	{"0C{V", 'F'},
	{"0C{X", 'F'},
	{"0C{\\", 'F'},
	{"0C{{", 'F'},
	{"0C{}", 'F'},
	{"0C}", 'F'},
	{"0C}&", 'F'},
	{"0C}(", 'F'},
	{"0C})", 'F'},
	{"0C},", 'F'},
	{"0C}.", 'F'},
	{"0C}1", 'F'},
	{"0C}:", 'F'},
	{"0C};", 'F'},
	{"0C}?", 'F'},
	{"0C}A", 'F'},
	{"0C}B", 'F'},
	{"0C}C", 'F'},
	{"0C}E", 'F'},
	{"0C}F", 'F'},
	{"0C}K", 'F'},
	{"0C}N", 'F'},
	{"0C}O", 'F'},
	{"0C}S", 'F'},
	{"0C}T", 'F'},
	{"0C}U", 'F'},
	{"0C}V", 'F'},
	{"0C}X", 'F'},
	{"0C}\\", 'F'},
	{"0C}{", 'F'},
	{"0C}}", 'F'},
	{"0E&", 'F'},
	{"0E(", 'F'},
	{"0E)", 'F'},
	{"0E,", 'F'},
	{"0E.", 'F'},
	{"0E1", 'F'},
	{"0E:", 'F'},
	{"0E;", 'F'},
	{"0E?", 'F'},
	{"0EA", 'F'},
	{"0EB", 'F'},
	{"0EC", 'F'},
	{"0EE", 'F'},
	{"0EF", 'F'},
	{"0EK", 'F'},
	{"0EN", 'F'},
	{"0EO", 'F'},
	{"0ES", 'F'},
	{"0ET", 'F'},
	{"0EU", 'F'},
	{"0EV", 'F'},
	{"0EX", 'F'},
	{"0E\\", 'F'},
	{"0E{", 'F'},
	{"0E}", 'F'},
	{"0F&", 'F'},
	{"0F&&", 'F'},
	{"0F&(", 'F'},
	{"0F&)", 'F'},
	{"0F&,", 'F'},
	{"0F&.", 'F'},
	{"0F&1", 'F'},
	{"0F&:", 'F'},
	{"0F&;", 'F'},
	{"0F&?", 'F'},
	{"0F&A", 'F'},
	{"0F&B", 'F'},
	{"0F&C", 'F'},
	{"0F&E", 'F'},
	{"0F&F", 'F'},
	{"0F&K", 'F'},
	{"0F&N", 'F'},
	{"0F&O", 'F'},
	{"0F&S", 'F'},
	{"0F&T", 'F'},
	{"0F&U", 'F'},
	{"0F&V", 'F'},
	{"0F&X", 'F'},
	{"0F&\\", 'F'},
	{"0F&{", 'F'},
	{"0F&}", 'F'},
	{"0F(", 'F'},
	{"0F(&", 'F'},
	{"0F((", 'F'},
	{"0F()", 'F'},
	{"0F(,", 'F'},
	{"0F(.", 'F'},
	{"0F(1", 'F'},
	{"0F(:", 'F'},
	{"0F(;", 'F'},
	{"0F(?", 'F'},
	{"0F(A", 'F'},
	{"0F(B", 'F'},
	{"0F(C", 'F'},
	{"0F(E", 'F'},
	{"0F(F", 'F'},
	{"0F(K", 'F'},
	{"0F(N", 'F'},
	{"0F(O", 'F'},
	{"0F(S", 'F'},
	{"0F(T", 'F'},
	{"0F(U", 'F'},
	{"0F(V", 'F'},
	{"0F(X", 'F'},
	{"0F(\\", 'F'},
	{"0F({", 'F'},
	{"0F(}", 'F'},
	{"0F)", 'F'},
	{"0F)&", 'F'},
	{"0F)(", 'F'},
	{"0F))", 'F'},
	{"0F),", 'F'},
	{"0F).", 'F'},
	{"0F)1", 'F'},
	{"0F):", 'F'},
	{"0F);", 'F'},
	{"0F)?", 'F'},
	{"0F)A", 'F'},
	{"0F)B", 'F'},
	{"0F)C", 'F'},
	{"0F)E", 'F'},
	{"0F)F", 'F'},
	{"0F)K", 'F'},
	{"0F)N", 'F'},
	{"0F)O", 'F'},
	{"0F)S", 'F'},
	{"0F)T", 'F'},
	{"0F)U", 'F'},
	{"0F)V", 'F'},
	{"0F)X", 'F'},
	{"0F)\\", 'F'},
	{"0F){", 'F'},
	{"0F)}", 'F'},
	{"0F,", 'F'},
	{"0F,&", 'F'},
	{"0F,(", 'F'},
	{"0F,)", 'F'},
	{"0F,,", 'F'},
	{"0F,.", 'F'},
	{"0F,1", 'F'},
	{"0F,:", 'F'},
	{"0F,;", 'F'},
	{"0F,?", 'F'},
	{"0F,A", 'F'},
	{"0F,B", 'F'},
	{"0F,C", 'F'},
	{"0F,E", 'F'},
	{"0F,F", 'F'},
	{"0F,K", 'F'},
	{"0F,N", 'F'},
	{"0F,O", 'F'},
	{"0F,S", 'F'},
	{"0F,T", 'F'},
	{"0F,U", 'F'},
	{"0F,V", 'F'},
	{"0F,X", 'F'},
	{"0F,\\", 'F'},
	{"0F,{", 'F'},
	{"0F,}", 'F'},
	{"0F.", 'F'},
	{"0F.&", 'F'},
	{"0F.(", 'F'},
	{"0F.)", 'F'},
	{"0F.,", 'F'},
	{"0F..", 'F'},
	{"0F.1", 'F'},
	{"0F.:", 'F'},
	{"0F.;", 'F'},
	{"0F.?", 'F'},
	{"0F.A", 'F'},
	{"0F.B", 'F'},
	{"0F.C", 'F'},
	{"0F.E", 'F'},
	{"0F.F", 'F'},
	{"0F.K", 'F'},
	{"0F.N", 'F'},
	{"0F.O", 'F'},
	{"0F.S", 'F'},
	{"0F.T", 'F'},
	{"0F.U", 'F'},
	{"0F.V", 'F'},
	{"0F.X", 'F'},
	{"0F.\\", 'F'},
	{"0F.{", 'F'},
	{"0F.}", 'F'},
	{"0F1", 'F'},
	{"0F1&", 'F'},
	{"0F1(", 'F'},
	{"0F1)", 'F'},
	{"0F1,", 'F'},
	{"0F1.", 'F'},
	{"0F11", 'F'},
	{"0F1:", 'F'},
	{"0F1;", 'F'},
	{"0F1?", 'F'},
	{"0F1A", 'F'},
	{"0F1B", 'F'},
	{"0F1C", 'F'},
	{"0F1E", 'F'},
	{"0F1F", 'F'},
	{"0F1K", 'F'},
	{"0F1N", 'F'},
	{"0F1O", 'F'},
	{"0F1S", 'F'},
	{"0F1T", 'F'},
	{"0F1U", 'F'},
	{"0F1V", 'F'},
	{"0F1X", 'F'},
	{"0F1\\", 'F'},
	{"0F1{", 'F'},
	{"0F1}", 'F'},
	{"0F:", 'F'},
	{"0F:&", 'F'},
	{"0F:(", 'F'},
	{"0F:)", 'F'},
	{"0F:,", 'F'},
	{"0F:.", 'F'},
	{"0F:1", 'F'},
	{"0F::", 'F'},
	{"0F:;", 'F'},
	{"0F:?", 'F'},
	{"0F:A", 'F'},
	{"0F:B", 'F'},
	{"0F:C", 'F'},
	{"0F:E", 'F'},
	{"0F:F", 'F'},
	{"0F:K", 'F'},
	{"0F:N", 'F'},
	{"0F:O", 'F'},
	{"0F:S", 'F'},
	{"0F:T", 'F'},
	{"0F:U", 'F'},
	{"0F:V", 'F'},
	{"0F:X", 'F'},
	{"0F:\\", 'F'},
	{"0F:{", 'F'},
	{"0F:}", 'F'},
	{"0F;", 'F'},
	{"0F;&", 'F'},
	{"0F;(", 'F'},
	{"0F;)", 'F'},
	{"0F;,", 'F'},
	{"0F;.", 'F'},
	{"0F;1", 'F'},
	{"0F;:", 'F'},
	{"0F;;", 'F'},
	{"0F;?", 'F'},
	{"0F;A", 'F'},
	{"0F;B", 'F'},
	{"0F;C", 'F'},
	{"0F;E", 'F'},
	{"0F;F", 'F'},
	{"0F;K", 'F'},
	{"0F;N", 'F'},
	{"0F;O", 'F'},
	{"0F;S", 'F'},
	{"0F;T", 'F'},
	{"0F;U", 'F'},
	{"0F;V", 'F'},
	{"0F;X", 'F'},
	{"0F;\\", 'F'},
	{"0F;{", 'F'},
	{"0F;}", 'F'},
	{"0F?", 'F'},
	{"0F?&", 'F'},
	{"0F?(", 'F'},
	{"0F?)", 'F'},
	{"0F?,", 'F'},
	{"0F?.", 'F'},
	{"0F?1", 'F'},
	{"0F?:", 'F'},
	{"0F?;", 'F'},
	{"0F??", 'F'},
	{"0F?A", 'F'},
	{"0F?B", 'F'},
	{"0F?C", 'F'},
	{"0F?E", 'F'},
	{"0F?F", 'F'},
	{"0F?K", 'F'},
	{"0F?N", 'F'},
	{"0F?O", 'F'},
	{"0F?S", 'F'},
	{"0F?T", 'F'},
	{"0F?U", 'F'},
	{"0F?V", 'F'},
	{"0F?X", 'F'},
	{"0F?\\", 'F'},
	{"0F?{", 'F'},
	{"0F?}", 'F'},
	{"0FA", 'F'},
	{"0FA&", 'F'},
	{"0FA(", 'F'},
	{"0FA)", 'F'},
	{"0FA,", 'F'},
	{"0FA.", 'F'},
	{"0FA1", 'F'},
	{"0FA:", 'F'},
	{"0FA;", 'F'},
	{"0FA?", 'F'},
	{"0FAA", 'F'},
	{"0FAB", 'F'},
	{"0FAC", 'F'},
	{"0FAE", 'F'},
	{"0FAF", 'F'},
	{"0FAK", 'F'},
	{"0FAN", 'F'},
	{"0FAO", 'F'},
	{"0FAS", 'F'},
	{"0FAT", 'F'},
	{"0FAU", 'F'},
	{"0FAV", 'F'},
	{"0FAX", 'F'},
	{"0FA\\", 'F'},
	{"0FA{", 'F'},
	{"0FA}", 'F'},
	{"0FB", 'F'},
	{"0FB&", 'F'},
	{"0FB(", 'F'},
	{"0FB)", 'F'},
	{"0FB,", 'F'},
	{"0FB.", 'F'},
	{"0FB1", 'F'},
	{"0FB:", 'F'},
	{"0FB;", 'F'},
	{"0FB?", 'F'},
	{"0FBA", 'F'},
	{"0FBB", 'F'},
	{"0FBC", 'F'},
	{"0FBE", 'F'},
	{"0FBF", 'F'},
	{"0FBK", 'F'},
	{"0FBN", 'F'},
	{"0FBO", 'F'},
	{"0FBS", 'F'},
	{"0FBT", 'F'},
	{"0FBU", 'F'},
	{"0FBV", 'F'},
	{"0FBX", 'F'},
	{"0FB\\", 'F'},
	{"0FB{", 'F'},
	{"0FB}", 'F'},
	{"0FC", 'F'},
	{"0FC&", 'F'},
	{"0FC(", 'F'},
	{"0FC)", 'F'},
	{"0FC,", 'F'},
	{"0FC.", 'F'},
	{"0FC1", 'F'},
	{"0FC:", 'F'},
	{"0FC;", 'F'},
	{"0FC?", 'F'},
	{"0FCA", 'F'},
	{"0FCB", 'F'},
	{"0FCC", 'F'},
	{"0FCE", 'F'},
	{"0FCF", 'F'},
	{"0FCK", 'F'},
	{"0FCN", 'F'},
	{"0FCO", 'F'},
	{"0FCS", 'F'},
	{"0FCT", 'F'},
	{"0FCU", 'F'},
	{"0FCV", 'F'},
	{"0FCX", 'F'},
	{"0FC\\", 'F'},
	{"0FC{", 'F'},
	{"0FC}", 'F'},
	{"0FE", 'F'},
	{"0FE&", 'F'},
	{"0FE(", 'F'},
	{"0FE)", 'F'},
	{"0FE,", 'F'},
	{"0FE.", 'F'},
	{"0FE1", 'F'},
	{"0FE:", 'F'},
	{"0FE;", 'F'},
	{"0FE?", 'F'},
	{"0FEA", 'F'},
	{"0FEB", 'F'},
	{"0FEC", 'F'},
	{"0FEE", 'F'},
	{"0FEF", 'F'},
	{"0FEK", 'F'},
	{"0FEN", 'F'},
	{"0FEO", 'F'},
	{"0FES", 'F'},
	{"0FET", 'F'},
	{"0FEU", 'F'},
	{"0FEV", 'F'},
	{"0FEX", 'F'},
	{"0FE\\", 'F'},
	{"0FE{", 'F'},
	{"0FE}", 'F'},
	{"0FF", 'F'},
	{"0FF&", 'F'},
	{"0FF(", 'F'},
	{"0FF)", 'F'},
	{"0FF,", 'F'},
	{"0FF.", 'F'},
	{"0FF1", 'F'},
	{"0FF:", 'F'},
	{"0FF;", 'F'},
	{"0FF?", 'F'},
	{"0FFA", 'F'},
	{"0FFB", 'F'},
	{"0FFC", 'F'},
	{"0FFE", 'F'},
	{"0FFF", 'F'},
	{"0FFK", 'F'},
	{"0FFN", 'F'},
	{"0FFO", 'F'},
	{"0FFS", 'F'},
	{"0FFT", 'F'},
	{"0FFU", 'F'},
	{"0FFV", 'F'},
	{"0FFX", 'F'},
	{"0FF\\", 'F'},
	{"0FF{", 'F'},
	{"0FF}", 'F'},
	{"0FK", 'F'},
	{"0FK&", 'F'},
	{"0FK(", 'F'},
	{"0FK)", 'F'},
	{"0FK,", 'F'},
	{"0FK.", 'F'},
	{"0FK1", 'F'},
	{"0FK:", 'F'},
	{"0FK;", 'F'},
	{"0FK?", 'F'},
	{"0FKA", 'F'},
	{"0FKB", 'F'},
	{"0FKC", 'F'},
	{"0FKE", 'F'},
	{"0FKF", 'F'},
	{"0FKK", 'F'},
	{"0FKN", 'F'},
	{"0FKO", 'F'},
	{"0FKS", 'F'},
	{"0FKT", 'F'},
	{"0FKU", 'F'},
	{"0FKV", 'F'},
	{"0FKX", 'F'},
	{"0FK\\", 'F'},
	{"0FK{", 'F'},
	{"0FK}", 'F'},
	{"0FN", 'F'},
	{"0FN&", 'F'},
	{"0FN(", 'F'},
	{"0FN)", 'F'},
	{"0FN,", 'F'},
	{"0FN.", 'F'},
	{"0FN1", 'F'},
	{"0FN:", 'F'},
	{"0FN;", 'F'},
	{"0FN?", 'F'},
	{"0FNA", 'F'},
	{"0FNB", 'F'},
	{"0FNC", 'F'},
	{"0FNE", 'F'},
	{"0FNF", 'F'},
	{"0FNK", 'F'},
	{"0FNN", 'F'},
	{"0FNO", 'F'},
	{"0FNS", 'F'},
	{"0FNT", 'F'},
	{"0FNU", 'F'},
	{"0FNV", 'F'},
	{"0FNX", 'F'},
	{"0FN\\", 'F'},
	{"0FN{", 'F'},
	{"0FN}", 'F'},
	{"0FO", 'F'},
	{"0FO&", 'F'},
	{"0FO(", 'F'},
	{"0FO)", 'F'},
	{"0FO,", 'F'},
	{"0FO.", 'F'},
	{"0FO1", 'F'},
	{"0FO:", 'F'},
	{"0FO;", 'F'},
	{"0FO?", 'F'},
	{"0FOA", 'F'},
	{"0FOB", 'F'},
	{"0FOC", 'F'},
	{"0FOE", 'F'},
	{"0FOF", 'F'},
	{"0FOK", 'F'},
	{"0FON", 'F'},
	{"0FOO", 'F'},
	{"0FOS", 'F'},
	{"0FOT", 'F'},
	{"0FOU", 'F'},
	{"0FOV", 'F'},
	{"0FOX", 'F'},
	{"0FO\\", 'F'},
	{"0FO{", 'F'},
	{"0FO}", 'F'},
	{"0FS", 'F'},
	{"0FS&", 'F'},
	{"0FS(", 'F'},
	{"0FS)", 'F'},
	{"0FS,", 'F'},
	{"0FS.", 'F'},
	{"0FS1", 'F'},
	{"0FS:", 'F'},
	{"0FS;", 'F'},
	{"0FS?", 'F'},
	{"0FSA", 'F'},
	{"0FSB", 'F'},
	{"0FSC", 'F'},
	{"0FSE", 'F'},
	{"0FSF", 'F'},
	{"0FSK", 'F'},
	{"0FSN", 'F'},
	{"0FSO", 'F'},
	{"0FSS", 'F'},
	{"0FST", 'F'},
	{"0FSU", 'F'},
	{"0FSV", 'F'},
	{"0FSX", 'F'},
	{"0FS\\", 'F'},
	{"0FS{", 'F'},
	{"0FS}", 'F'},
	{"0FT", 'F'},
	{"0FT&", 'F'},
	{"0FT(", 'F'},
	{"0FT)", 'F'},
	{"0FT,", 'F'},
	{"0FT.", 'F'},
	{"0FT1", 'F'},
	{"0FT:", 'F'},
	{"0FT;", 'F'},
	{"0FT?", 'F'},
	{"0FTA", 'F'},
	{"0FTB", 'F'},
	{"0FTC", 'F'},
	{"0FTE", 'F'},
	{"0FTF", 'F'},
	{"0FTK", 'F'},
	{"0FTN", 'F'},
	{"0FTO", 'F'},
	{"0FTS", 'F'},
	{"0FTT", 'F'},
	{"0FTU", 'F'},
	{"0FTV", 'F'},
	{"0FTX", 'F'},
	{"0FT\\", 'F'},
	{"0FT{", 'F'},
	{"0FT}", 'F'},
	{"0FU", 'F'},
	{"0FU&", 'F'},
	{"0FU(", 'F'},
	{"0FU)", 'F'},
	{"0FU,", 'F'},
	{"0FU.", 'F'},
	{"0FU1", 'F'},
	{"0FU:", 'F'},
	{"0FU;", 'F'},
	{"0FU?", 'F'},
	{"0FUA", 'F'},
	{"0FUB", 'F'},
	{"0FUC", 'F'},
	{"0FUE", 'F'},
	{"0FUF", 'F'},
	{"0FUK", 'F'},
	{"0FUN", 'F'},
	{"0FUO", 'F'},
	{"0FUS", 'F'},
	{"0FUT", 'F'},
	{"0FUU", 'F'},
	{"0FUV", 'F'},
	{"0FUX", 'F'},
	{"0FU\\", 'F'},
	{"0FU{", 'F'},
	{"0FU}", 'F'},
	{"0FV", 'F'},
	{"0FV&", 'F'},
	{"0FV(", 'F'},
	{"0FV)", 'F'},
	{"0FV,", 'F'},
	{"0FV.", 'F'},
	{"0FV1", 'F'},
	{"0FV:", 'F'},
	{"0FV;", 'F'},
	{"0FV?", 'F'},
	{"0FVA", 'F'},
	{"0FVB", 'F'},
	{"0FVC", 'F'},
	{"0FVE", 'F'},
	{"0FVF", 'F'},
	{"0FVK", 'F'},
	{"0FVN", 'F'},
	{"0FVO", 'F'},
	{"0FVS", 'F'},
	{"0FVT", 'F'},
	{"0FVU", 'F'},
	{"0FVV", 'F'},
	{"0FVX", 'F'},
	{"0FV\\", 'F'},
	{"0FV{", 'F'},
	{"0FV}", 'F'},
	{"0FX", 'F'},
	{"0FX&", 'F'},
	{"0FX(", 'F'},
	{"0FX)", 'F'},
	{"0FX,", 'F'},
	{"0FX.", 'F'},
	{"0FX1", 'F'},
	{"0FX:", 'F'},
	{"0FX;", 'F'},
	{"0FX?", 'F'},
	{"0FXA", 'F'},
	{"0FXB", 'F'},
	{"0FXC", 'F'},
	{"0FXE", 'F'},
	{"0FXF", 'F'},
	{"0FXK", 'F'},
	{"0FXN", 'F'},
	{"0FXO", 'F'},
	{"0FXS", 'F'},
	{"0FXT", 'F'},
	{"0FXU", 'F'},
	{"0FXV", 'F'},
	{"0FXX", 'F'},
	{"0FX\\", 'F'},
	{"0FX{", 'F'},
	{"0FX}", 'F'},
	{"0F\\", 'F'},
	{"0F\\&", 'F'},
	{"0F\\(", 'F'},
	{"0F\\)", 'F'},
	{"0F\\,", 'F'},
	{"0F\\.", 'F'},
	{"0F\\1", 'F'},
	{"0F\\:", 'F'},
	{"0F\\;", 'F'},
	{"0F\\?", 'F'},
	{"0F\\A", 'F'},
	{"0F\\B", 'F'},
	{"0F\\C", 'F'},
	{"0F\\E", 'F'},
	{"0F\\F", 'F'},
	{"0F\\K", 'F'},
	{"0F\\N", 'F'},
	{"0F\\O", 'F'},
	{"0F\\S", 'F'},
	{"0F\\T", 'F'},
	{"0F\\U", 'F'},
	{"0F\\V", 'F'},
	{"0F\\X", 'F'},
	{"0F\\\\", 'F'},
	{"0F\\{", 'F'},
	{"0F\\}", 'F'},
	{"0F{", 'F'},
	{"0F{&", 'F'},
	{"0F{(", 'F'},
	{"0F{)", 'F'},
	{"0F{,", 'F'},
	{"0F{.", 'F'},
	{"0F{1", 'F'},
	{"0F{:", 'F'},
	{"0F{;", 'F'},
	{"0F{?", 'F'},
	{"0F{A", 'F'},
	{"0F{B", 'F'},
	{"0F{C", 'F'},
	{"0F{E", 'F'},
	{"0F{F", 'F'},
	{"0F{K", 'F'},
	{"0F{N", 'F'},
	{"0F{O", 'F'},
	{"0F{S", 'F'},
	{"0F{T", 'F'},
	{"0F{U", 'F'},
	{"0F{V", 'F'},
	{"0F{X", 'F'},
	{"0F{\\", 'F'},
	{"0F{{", 'F'},
	{"0F{}", 'F'},
	{"0F}", 'F'},
	{"0F}&", 'F'},
	{"0F}(", 'F'},
	{"0F})", 'F'},
	{"0F},", 'F'},
	{"0F}.", 'F'},
	{"0F}1", 'F'},
	{"0F}:", 'F'},
	{"0F};", 'F'},
	{"0F}?", 'F'},
	{"0F}A", 'F'},
	{"0F}B", 'F'},
	{"0F}C", 'F'},
	{"0F}E", 'F'},
	{"0F}F", 'F'},
	{"0F}K", 'F'},
	{"0F}N", 'F'},
	{"0F}O", 'F'},
	{"0F}S", 'F'},
	{"0F}T", 'F'},
	{"0F}U", 'F'},
	{"0F}V", 'F'},
	{"0F}X", 'F'},
	{"0F}\\", 'F'},
	{"0F}{", 'F'},
	{"0F}}", 'F'},
	{"0K&", 'F'},
	{"0K&&", 'F'},
	{"0K&(", 'F'},
	{"0K&)", 'F'},
	{"0K&,", 'F'},
	{"0K&.", 'F'},
	{"0K&1", 'F'},
	{"0K&:", 'F'},
	{"0K&;", 'F'},
	{"0K&?", 'F'},
	{"0K&A", 'F'},
	{"0K&B", 'F'},
	{"0K&C", 'F'},
	{"0K&E", 'F'},
	{"0K&F", 'F'},
	{"0K&K", 'F'},
	{"0K&N", 'F'},
	{"0K&O", 'F'},
	{"0K&S", 'F'},
	{"0K&T", 'F'},
	{"0K&U", 'F'},
	{"0K&V", 'F'},
	{"0K&X", 'F'},
	{"0K&\\", 'F'},
	{"0K&{", 'F'},
	{"0K&}", 'F'},
	{"0K(", 'F'},
	{"0K(&", 'F'},
	{"0K((", 'F'},
	{"0K()", 'F'},
	{"0K(,", 'F'},
	{"0K(.", 'F'},
	{"0K(1", 'F'},
	{"0K(:", 'F'},
	{"0K(;", 'F'},
	{"0K(?", 'F'},
	{"0K(A", 'F'},
	{"0K(B", 'F'},
	{"0K(C", 'F'},
	{"0K(E", 'F'},
	{"0K(F", 'F'},
	{"0K(K", 'F'},
	{"0K(N", 'F'},
	{"0K(O", 'F'},
	{"0K(S", 'F'},
	{"0K(T", 'F'},
	{"0K(U", 'F'},
	{"0K(V", 'F'},
	{"0K(X", 'F'},
	{"0K(\\", 'F'},
	{"0K({", 'F'},
	{"0K(}", 'F'},
	{"0K)", 'F'},
	{"0K)&", 'F'},
	{"0K)(", 'F'},
	{"0K))", 'F'},
	{"0K),", 'F'},
	{"0K).", 'F'},
	{"0K)1", 'F'},
	{"0K):", 'F'},
	{"0K);", 'F'},
	{"0K)?", 'F'},
	{"0K)A", 'F'},
	{"0K)B", 'F'},
	{"0K)C", 'F'},
	{"0K)E", 'F'},
	{"0K)F", 'F'},
	{"0K)K", 'F'},
	{"0K)N", 'F'},
	{"0K)O", 'F'},
	{"0K)S", 'F'},
	{"0K)T", 'F'},
	{"0K)U", 'F'},
	{"0K)V", 'F'},
	{"0K)X", 'F'},
	{"0K)\\", 'F'},
	{"0K){", 'F'},
	{"0K)}", 'F'},
	{"0K,", 'F'},
	{"0K,&", 'F'},
	{"0K,(", 'F'},
	{"0K,)", 'F'},
	{"0K,,", 'F'},
	{"0K,.", 'F'},
	{"0K,1", 'F'},
	{"0K,:", 'F'},
	{"0K,;", 'F'},
	{"0K,?", 'F'},
	{"0K,A", 'F'},
	{"0K,B", 'F'},
	{"0K,C", 'F'},
	{"0K,E", 'F'},
	{"0K,F", 'F'},
	{"0K,K", 'F'},
	{"0K,N", 'F'},
	{"0K,O", 'F'},
	{"0K,S", 'F'},
	{"0K,T", 'F'},
	{"0K,U", 'F'},
	{"0K,V", 'F'},
	{"0K,X", 'F'},
	{"0K,\\", 'F'},
	{"0K,{", 'F'},
	{"0K,}", 'F'},
	{"0K.", 'F'},
	{"0K.&", 'F'},
	{"0K.(", 'F'},
	{"0K.)", 'F'},
	{"0K.,", 'F'},
	{"0K..", 'F'},
	{"0K.1", 'F'},
	{"0K.:", 'F'},
	{"0K.;", 'F'},
	{"0K.?", 'F'},
	{"0K.A", 'F'},
	{"0K.B", 'F'},
	{"0K.C", 'F'},
	{"0K.E", 'F'},
	{"0K.F", 'F'},
	{"0K.K", 'F'},
	{"0K.N", 'F'},
	{"0K.O", 'F'},
	{"0K.S", 'F'},
	{"0K.T", 'F'},
	{"0K.U", 'F'},
	{"0K.V", 'F'},
	{"0K.X", 'F'},
	{"0K.\\", 'F'},
	{"0K.{", 'F'},
	{"0K.}", 'F'},
	{"0K1", 'F'},
	{"0K1&", 'F'},
	{"0K1(", 'F'},
	{"0K1)", 'F'},
	{"0K1,", 'F'},
	{"0K1.", 'F'},
	{"0K11", 'F'},
	{"0K1:", 'F'},
	{"0K1;", 'F'},
	{"0K1?", 'F'},
	{"0K1A", 'F'},
	{"0K1B", 'F'},
	{"0K1C", 'F'},
	{"0K1E", 'F'},
	{"0K1F", 'F'},
	{"0K1K", 'F'},
	{"0K1N", 'F'},
	{"0K1O", 'F'},
	{"0K1S", 'F'},
	{"0K1T", 'F'},
	{"0K1U", 'F'},
	{"0K1V", 'F'},
	{"0K1X", 'F'},
	{"0K1\\", 'F'},
	{"0K1{", 'F'},
	{"0K1}", 'F'},
	{"0K:", 'F'},
	{"0K:&", 'F'},
	{"0K:(", 'F'},
	{"0K:)", 'F'},
	{"0K:,", 'F'},
	{"0K:.", 'F'},
	{"0K:1", 'F'},
	{"0K::", 'F'},
	{"0K:;", 'F'},
	{"0K:?", 'F'},
	{"0K:A", 'F'},
	{"0K:B", 'F'},
	{"0K:C", 'F'},
	{"0K:E", 'F'},
	{"0K:F", 'F'},
	{"0K:K", 'F'},
	{"0K:N", 'F'},
	{"0K:O", 'F'},
	{"0K:S", 'F'},
	{"0K:T", 'F'},
	{"0K:U", 'F'},
	{"0K:V", 'F'},
	{"0K:X", 'F'},
	{"0K:\\", 'F'},
	{"0K:{", 'F'},
	{"0K:}", 'F'},
	{"0K;", 'F'},
	{"0K;&", 'F'},
	{"0K;(", 'F'},
	{"0K;)", 'F'},
	{"0K;,", 'F'},
	{"0K;.", 'F'},
	{"0K;1", 'F'},
	{"0K;:", 'F'},
	{"0K;;", 'F'},
	{"0K;?", 'F'},
	{"0K;A", 'F'},
	{"0K;B", 'F'},
	{"0K;C", 'F'},
	{"0K;E", 'F'},
	{"0K;F", 'F'},
	{"0K;K", 'F'},
	{"0K;N", 'F'},
	{"0K;O", 'F'},
	{"0K;S", 'F'},
	{"0K;T", 'F'},
	{"0K;U", 'F'},
	{"0K;V", 'F'},
	{"0K;X", 'F'},
	{"0K;\\", 'F'},
	{"0K;{", 'F'},
	{"0K;}", 'F'},
	{"0K?", 'F'},
	{"0K?&", 'F'},
	{"0K?(", 'F'},
	{"0K?)", 'F'},
	{"0K?,", 'F'},
	{"0K?.", 'F'},
	{"0K?1", 'F'},
	{"0K?:", 'F'},
	{"0K?;", 'F'},
	{"0K??", 'F'},
	{"0K?A", 'F'},
	{"0K?B", 'F'},
	{"0K?C", 'F'},
	{"0K?E", 'F'},
	{"0K?F", 'F'},
	{"0K?K", 'F'},
	{"0K?N", 'F'},
	{"0K?O", 'F'},
	{"0K?S", 'F'},
	{"0K?T", 'F'},
	{"0K?U", 'F'},
	{"0K?V", 'F'},
	{"0K?X", 'F'},
	{"0K?\\", 'F'},
	{"0K?{", 'F'},
	{"0K?}", 'F'},
	{"0KA", 'F'},
	{"0KA&", 'F'},
	{"0KA(", 'F'},
	{"0KA)", 'F'},
	{"0KA,", 'F'},
	{"0KA.", 'F'},
	{"0KA1", 'F'},
	{"0KA:", 'F'},
	{"0KA;", 'F'},
	{"0KA?", 'F'},
	{"0KAA", 'F'},
	{"0KAB", 'F'},
	{"0KAC", 'F'},
	{"0KAE", 'F'},
	{"0KAF", 'F'},
	{"0KAK", 'F'},
	{"0KAN", 'F'},
	{"0KAO", 'F'},
	{"0KAS", 'F'},
	{"0KAT", 'F'},
	{"0KAU", 'F'},
	{"0KAV", 'F'},
	{"0KAX", 'F'},
	{"0KA\\", 'F'},
	{"0KA{", 'F'},
	{"0KA}", 'F'},
	{"0KB", 'F'},
	{"0KB&", 'F'},
	{"0KB(", 'F'},
	{"0KB)", 'F'},
	{"0KB,", 'F'},
	{"0KB.", 'F'},
	{"0KB1", 'F'},
	{"0KB:", 'F'},
	{"0KB;", 'F'},
	{"0KB?", 'F'},
	{"0KBA", 'F'},
	{"0KBB", 'F'},
	{"0KBC", 'F'},
	{"0KBE", 'F'},
	{"0KBF", 'F'},
	{"0KBK", 'F'},
	{"0KBN", 'F'},
	{"0KBO", 'F'},
	{"0KBS", 'F'},
	{"0KBT", 'F'},
	{"0KBU", 'F'},
	{"0KBV", 'F'},
	{"0KBX", 'F'},
	{"0KB\\", 'F'},
	{"0KB{", 'F'},
	{"0KB}", 'F'},
	{"0KC", 'F'},
	{"0KC&", 'F'},
	{"0KC(", 'F'},
	{"0KC)", 'F'},
	{"0KC,", 'F'},
	{"0KC.", 'F'},
	{"0KC1", 'F'},
	{"0KC:", 'F'},
	{"0KC;", 'F'},
	{"0KC?", 'F'},
	{"0KCA", 'F'},
	{"0KCB", 'F'},
	{"0KCC", 'F'},
	{"0KCE", 'F'},
	{"0KCF", 'F'},
	{"0KCK", 'F'},
	{"0KCN", 'F'},
	{"0KCO", 'F'},
	{"0KCS", 'F'},
	{"0KCT", 'F'},
	{"0KCU", 'F'},
	{"0KCV", 'F'},
	{"0KCX", 'F'},
	{"0KC\\", 'F'},
	{"0KC{", 'F'},
	{"0KC}", 'F'},
	{"0KE", 'F'},
	{"0KE&", 'F'},
	{"0KE(", 'F'},
	{"0KE)", 'F'},
	{"0KE,", 'F'},
	{"0KE.", 'F'},
	{"0KE1", 'F'},
	{"0KE:", 'F'},
	{"0KE;", 'F'},
	{"0KE?", 'F'},
	{"0KEA", 'F'},
	{"0KEB", 'F'},
	{"0KEC", 'F'},
	{"0KEE", 'F'},
	{"0KEF", 'F'},
	{"0KEK", 'F'},
	{"0KEN", 'F'},
	{"0KEO", 'F'},
	{"0KES", 'F'},
	{"0KET", 'F'},
	{"0KEU", 'F'},
	{"0KEV", 'F'},
	{"0KEX", 'F'},
	{"0KE\\", 'F'},
	{"0KE{", 'F'},
	{"0KE}", 'F'},
	{"0KF", 'F'},
	{"0KF&", 'F'},
	{"0KF(", 'F'},
	{"0KF)", 'F'},
	{"0KF,", 'F'},
	{"0KF.", 'F'},
	{"0KF1", 'F'},
	{"0KF:", 'F'},
	{"0KF;", 'F'},
	{"0KF?", 'F'},
	{"0KFA", 'F'},
	{"0KFB", 'F'},
	{"0KFC", 'F'},
	{"0KFE", 'F'},
	{"0KFF", 'F'},
	{"0KFK", 'F'},
	{"0KFN", 'F'},
	{"0KFO", 'F'},
	{"0KFS", 'F'},
	{"0KFT", 'F'},
	{"0KFU", 'F'},
	{"0KFV", 'F'},
	{"0KFX", 'F'},
	{"0KF\\", 'F'},
	{"0KF{", 'F'},
	{"0KF}", 'F'},
	{"0KK", 'F'},
	{"0KK&", 'F'},
	{"0KK(", 'F'},
	{"0KK)", 'F'},
	{"0KK,", 'F'},
	{"0KK.", 'F'},
	{"0KK1", 'F'},
	{"0KK:", 'F'},
	{"0KK;", 'F'},
	{"0KK?", 'F'},
	{"0KKA", 'F'},
	{"0KKB", 'F'},
	{"0KKC", 'F'},
	{"0KKE", 'F'},
	{"0KKF", 'F'},
	{"0KKK", 'F'},
	{"0KKN", 'F'},
	{"0KKO", 'F'},
	{"0KKS", 'F'},
	{"0KKT", 'F'},
	{"0KKU", 'F'},
	{"0KKV", 'F'},
	{"0KKX", 'F'},
	{"0KK\\", 'F'},
	{"0KK{", 'F'},
	{"0KK}", 'F'},
	{"0KN", 'F'},
	{"0KN&", 'F'},
	{"0KN(", 'F'},
	{"0KN)", 'F'},
	{"0KN,", 'F'},
	{"0KN.", 'F'},
	{"0KN1", 'F'},
	{"0KN:", 'F'},
	{"0KN;", 'F'},
	{"0KN?", 'F'},
	{"0KNA", 'F'},
	{"0KNB", 'F'},
	{"0KNC", 'F'},
	{"0KNE", 'F'},
	{"0KNF", 'F'},
	{"0KNK", 'F'},
	{"0KNN", 'F'},
	{"0KNO", 'F'},
	{"0KNS", 'F'},
	{"0KNT", 'F'},
	{"0KNU", 'F'},
	{"0KNV", 'F'},
	{"0KNX", 'F'},
	{"0KN\\", 'F'},
	{"0KN{", 'F'},
	{"0KN}", 'F'},
	{"0KO", 'F'},
	{"0KO&", 'F'},
	{"0KO(", 'F'},
	{"0KO)", 'F'},
	{"0KO,", 'F'},
	{"0KO.", 'F'},
	{"0KO1", 'F'},
	{"0KO:", 'F'},
	{"0KO;", 'F'},
	{"0KO?", 'F'},
	{"0KOA", 'F'},
	{"0KOB", 'F'},
	{"0KOC", 'F'},
	{"0KOE", 'F'},
	{"0KOF", 'F'},
	{"0KOK", 'F'},
	{"0KON", 'F'},
	{"0KOO", 'F'},
	{"0KOS", 'F'},
	{"0KOT", 'F'},
	{"0KOU", 'F'},
	{"0KOV", 'F'},
	{"0KOX", 'F'},
	{"0KO\\", 'F'},
	{"0KO{", 'F'},
	{"0KO}", 'F'},
	{"0KS", 'F'},
	{"0KS&", 'F'},
	{"0KS(", 'F'},
	{"0KS)", 'F'},
	{"0KS,", 'F'},
	{"0KS.", 'F'},
	{"0KS1", 'F'},
	{"0KS:", 'F'},
	{"0KS;", 'F'},
	{"0KS?", 'F'},
	{"0KSA", 'F'},
	{"0KSB", 'F'},
	{"0KSC", 'F'},
	{"0KSE", 'F'},
	{"0KSF", 'F'},
	{"0KSK", 'F'},
	{"0KSN", 'F'},
	{"0KSO", 'F'},
	{"0KSS", 'F'},
	{"0KST", 'F'},
	{"0KSU", 'F'},
	{"0KSV", 'F'},
	{"0KSX", 'F'},
	{"0KS\\", 'F'},
	{"0KS{", 'F'},
	{"0KS}", 'F'},
	{"0KT", 'F'},
	{"0KT&", 'F'},
	{"0KT(", 'F'},
	{"0KT)", 'F'},
	{"0KT,", 'F'},
	{"0KT.", 'F'},
	{"0KT1", 'F'},
	{"0KT:", 'F'},
	{"0KT;", 'F'},
	{"0KT?", 'F'},
	{"0KTA", 'F'},
	{"0KTB", 'F'},
	{"0KTC", 'F'},
	{"0KTE", 'F'},
	{"0KTF", 'F'},
	{"0KTK", 'F'},
	{"0KTN", 'F'},
	{"0KTO", 'F'},
	{"0KTS", 'F'},
	{"0KTT", 'F'},
	{"0KTU", 'F'},
	{"0KTV", 'F'},
	{"0KTX", 'F'},
	{"0KT\\", 'F'},
	{"0KT{", 'F'},
	{"0KT}", 'F'},
	{"0KU", 'F'},
	{"0KU&", 'F'},
	{"0KU(", 'F'},
	{"0KU)", 'F'},
	{"0KU,", 'F'},
	{"0KU.", 'F'},
	{"0KU1", 'F'},
	{"0KU:", 'F'},
	{"0KU;", 'F'},
	{"0KU?", 'F'},
	{"0KUA", 'F'},
	{"0KUB", 'F'},
	{"0KUC", 'F'},
	{"0KUE", 'F'},
	{"0KUF", 'F'},
	{"0KUK", 'F'},
	{"0KUN", 'F'},
	{"0KUO", 'F'},
	{"0KUS", 'F'},
	{"0KUT", 'F'},
	{"0KUU", 'F'},
	{"0KUV", 'F'},
	{"0KUX", 'F'},
	{"0KU\\", 'F'},
	{"0KU{", 'F'},
	{"0KU}", 'F'},
	{"0KV", 'F'},
	{"0KV&", 'F'},
	{"0KV(", 'F'},
	{"0KV)", 'F'},
	{"0KV,", 'F'},
	{"0KV.", 'F'},
	{"0KV1", 'F'},
	{"0KV:", 'F'},
	{"0KV;", 'F'},
	{"0KV?", 'F'},
	{"0KVA", 'F'},
	{"0KVB", 'F'},
	{"0KVC", 'F'},
	{"0KVE", 'F'},
	{"0KVF", 'F'},
	{"0KVK", 'F'},
	{"0KVN", 'F'},
	{"0KVO", 'F'},
	{"0KVS", 'F'},
	{"0KVT", 'F'},
	{"0KVU", 'F'},
	{"0KVV", 'F'},
	{"0KVX", 'F'},
	{"0KV\\", 'F'},
	{"0KV{", 'F'},
	{"0KV}", 'F'},
	{"0KX", 'F'},
	{"0KX&", 'F'},
	{"0KX(", 'F'},
	{"0KX)", 'F'},
	{"0KX,", 'F'},
	{"0KX.", 'F'},
	{"0KX1", 'F'},
	{"0KX:", 'F'},
	{"0KX;", 'F'},
	{"0KX?", 'F'},
	{"0KXA", 'F'},
	{"0KXB", 'F'},
	{"0KXC", 'F'},
	{"0KXE", 'F'},
	{"0KXF", 'F'},
	{"0KXK", 'F'},
	{"0KXN", 'F'},
	{"0KXO", 'F'},
	{"0KXS", 'F'},
	{"0KXT", 'F'},
	{"0KXU", 'F'},
	{"0KXV", 'F'},
	{"0KXX", 'F'},
	{"0KX\\", 'F'},
	{"0KX{", 'F'},
	{"0KX}", 'F'},
	{"0K\\", 'F'},
	{"0K\\&", 'F'},
	{"0K\\(", 'F'},
	{"0K\\)", 'F'},
	{"0K\\,", 'F'},
	{"0K\\.", 'F'},
	{"0K\\1", 'F'},
	{"0K\\:", 'F'},
	{"0K\\;", 'F'},
	{"0K\\?", 'F'},
	{"0K\\A", 'F'},
	{"0K\\B", 'F'},
	{"0K\\C", 'F'},
	{"0K\\E", 'F'},
	{"0K\\F", 'F'},
	{"0K\\K", 'F'},
	{"0K\\N", 'F'},
	{"0K\\O", 'F'},
	{"0K\\S", 'F'},
	{"0K\\T", 'F'},
	{"0K\\U", 'F'},
	{"0K\\V", 'F'},
	{"0K\\X", 'F'},
	{"0K\\\\", 'F'},
	{"0K\\{", 'F'},
	{"0K\\}", 'F'},
	{"0K{", 'F'},
	{"0K{&", 'F'},
	{"0K{(", 'F'},
	{"0K{)", 'F'},
	{"0K{,", 'F'},
	{"0K{.", 'F'},
	{"0K{1", 'F'},
	{"0K{:", 'F'},
	{"0K{;", 'F'},
	{"0K{?", 'F'},
	{"0K{A", 'F'},
	{"0K{B", 'F'},
	{"0K{C", 'F'},
	{"0K{E", 'F'},
	{"0K{F", 'F'},
	{"0K{K", 'F'},
	{"0K{N", 'F'},
	{"0K{O", 'F'},
	{"0K{S", 'F'},
	{"0K{T", 'F'},
	{"0K{U", 'F'},
	{"0K{V", 'F'},
	{"0K{X", 'F'},
	{"0K{\\", 'F'},
	{"0K{{", 'F'},
	{"0K{}", 'F'},
	{"0K}", 'F'},
	{"0K}&", 'F'},
	{"0K}(", 'F'},
	{"0K})", 'F'},
	{"0K},", 'F'},
	{"0K}.", 'F'},
	{"0K}1", 'F'},
	{"0K}:", 'F'},
	{"0K};", 'F'},
	{"0K}?", 'F'},
	{"0K}A", 'F'},
	{"0K}B", 'F'},
	{"0K}C", 'F'},
	{"0K}E", 'F'},
	{"0K}F", 'F'},
	{"0K}K", 'F'},
	{"0K}N", 'F'},
	{"0K}O", 'F'},
	{"0K}S", 'F'},
	{"0K}T", 'F'},
	{"0K}U", 'F'},
	{"0K}V", 'F'},
	{"0K}X", 'F'},
	{"0K}\\", 'F'},
	{"0K}{", 'F'},
	{"0K}}", 'F'},
	{"0N&", 'F'},
	{"0N&&", 'F'},
	{"0N&(", 'F'},
	{"0N&)", 'F'},
	{"0N&,", 'F'},
	{"0N&.", 'F'},
	{"0N&1", 'F'},
	{"0N&:", 'F'},
	{"0N&;", 'F'},
	{"0N&?", 'F'},
	{"0N&A", 'F'},
	{"0N&B", 'F'},
	{"0N&C", 'F'},
	{"0N&E", 'F'},
	{"0N&F", 'F'},
	{"0N&K", 'F'},
	{"0N&N", 'F'},
	{"0N&O", 'F'},
	{"0N&S", 'F'},
	{"0N&T", 'F'},
	{"0N&U", 'F'},
	{"0N&V", 'F'},
	{"0N&X", 'F'},
	{"0N&\\", 'F'},
	{"0N&{", 'F'},
	{"0N&}", 'F'},
	{"0N(", 'F'},
	{"0N(&", 'F'},
	{"0N((", 'F'},
	{"0N()", 'F'},
	{"0N(,", 'F'},
	{"0N(.", 'F'},
	{"0N(1", 'F'},
	{"0N(:", 'F'},
	{"0N(;", 'F'},
	{"0N(?", 'F'},
	{"0N(A", 'F'},
	{"0N(B", 'F'},
	{"0N(C", 'F'},
	{"0N(E", 'F'},
	{"0N(F", 'F'},
	{"0N(K", 'F'},
	{"0N(N", 'F'},
	{"0N(O", 'F'},
	{"0N(S", 'F'},
	{"0N(T", 'F'},
	{"0N(U", 'F'},
	{"0N(V", 'F'},
	{"0N(X", 'F'},
	{"0N(\\", 'F'},
	{"0N({", 'F'},
	{"0N(}", 'F'},
	{"0N)", 'F'},
	{"0N)&", 'F'},
	{"0N)(", 'F'},
	{"0N))", 'F'},
	{"0N),", 'F'},
	{"0N).", 'F'},
	{"0N)1", 'F'},
	{"0N):", 'F'},
	{"0N);", 'F'},
	{"0N)?", 'F'},
	{"0N)A", 'F'},
	{"0N)B", 'F'},
	{"0N)C", 'F'},
	{"0N)E", 'F'},
	{"0N)F", 'F'},
	{"0N)K", 'F'},
	{"0N)N", 'F'},
	{"0N)O", 'F'},
	{"0N)S", 'F'},
	{"0N)T", 'F'},
	{"0N)U", 'F'},
	{"0N)V", 'F'},
	{"0N)X", 'F'},
	{"0N)\\", 'F'},
	{"0N){", 'F'},
	{"0N)}", 'F'},
	{"0N,", 'F'},
	{"0N,&", 'F'},
	{"0N,(", 'F'},
	{"0N,)", 'F'},
	{"0N,,", 'F'},
	{"0N,.", 'F'},
	{"0N,1", 'F'},
	{"0N,:", 'F'},
	{"0N,;", 'F'},
	{"0N,?", 'F'},
	{"0N,A", 'F'},
	{"0N,B", 'F'},
	{"0N,C", 'F'},
	{"0N,E", 'F'},
	{"0N,F", 'F'},
	{"0N,K", 'F'},
	{"0N,N", 'F'},
	{"0N,O", 'F'},
	{"0N,S", 'F'},
	{"0N,T", 'F'},
	{"0N,U", 'F'},
	{"0N,V", 'F'},
	{"0N,X", 'F'},
	{"0N,\\", 'F'},
	{"0N,{", 'F'},
	{"0N,}", 'F'},
	{"0N.", 'F'},
	{"0N.&", 'F'},
	{"0N.(", 'F'},
	{"0N.)", 'F'},
	{"0N.,", 'F'},
	{"0N..", 'F'},
	{"0N.1", 'F'},
	{"0N.:", 'F'},
	{"0N.;", 'F'},
	{"0N.?", 'F'},
	{"0N.A", 'F'},
	{"0N.B", 'F'},
	{"0N.C", 'F'},
	{"0N.E", 'F'},
	{"0N.F", 'F'},
	{"0N.K", 'F'},
	{"0N.N", 'F'},
	{"0N.O", 'F'},
	{"0N.S", 'F'},
	{"0N.T", 'F'},
	{"0N.U", 'F'},
	{"0N.V", 'F'},
	{"0N.X", 'F'},
	{"0N.\\", 'F'},
	{"0N.{", 'F'},
	{"0N.}", 'F'},
	{"0N1", 'F'},
	{"0N1&", 'F'},
	{"0N1(", 'F'},
	{"0N1)", 'F'},
	{"0N1,", 'F'},
	{"0N1.", 'F'},
	{"0N11", 'F'},
	{"0N1:", 'F'},
	{"0N1;", 'F'},
	{"0N1?", 'F'},
	{"0N1A", 'F'},
	{"0N1B", 'F'},
	{"0N1C", 'F'},
	{"0N1E", 'F'},
	{"0N1F", 'F'},
	{"0N1K", 'F'},
	{"0N1N", 'F'},
	{"0N1O", 'F'},
	{"0N1S", 'F'},
	{"0N1T", 'F'},
	{"0N1U", 'F'},
	{"0N1V", 'F'},
	{"0N1X", 'F'},
	{"0N1\\", 'F'},
	{"0N1{", 'F'},
	{"0N1}", 'F'},
	{"0N:", 'F'},
	{"0N:&", 'F'},
	{"0N:(", 'F'},
	{"0N:)", 'F'},
	{"0N:,", 'F'},
	{"0N:.", 'F'},
	{"0N:1", 'F'},
	{"0N::", 'F'},
	{"0N:;", 'F'},
	{"0N:?", 'F'},
	{"0N:A", 'F'},
	{"0N:B", 'F'},
	{"0N:C", 'F'},
	{"0N:E", 'F'},
	{"0N:F", 'F'},
	{"0N:K", 'F'},
	{"0N:N", 'F'},
	{"0N:O", 'F'},
	{"0N:S", 'F'},
	{"0N:T", 'F'},
	{"0N:U", 'F'},
	{"0N:V", 'F'},
	{"0N:X", 'F'},
	{"0N:\\", 'F'},
	{"0N:{", 'F'},
	{"0N:}", 'F'},
	{"0N;", 'F'},
	{"0N;&", 'F'},
	{"0N;(", 'F'},
	{"0N;)", 'F'},
	{"0N;,", 'F'},
	{"0N;.", 'F'},
	{"0N;1", 'F'},
	{"0N;:", 'F'},
	{"0N;;", 'F'},
	{"0N;?", 'F'},
	{"0N;A", 'F'},
	{"0N;B", 'F'},
	{"0N;C", 'F'},
	{"0N;E", 'F'},
	{"0N;F", 'F'},
	{"0N;K", 'F'},
	{"0N;N", 'F'},
	{"0N;O", 'F'},
	{"0N;S", 'F'},
	{"0N;T", 'F'},
	{"0N;U", 'F'},
	{"0N;V", 'F'},
	{"0N;X", 'F'},
	{"0N;\\", 'F'},
	{"0N;{", 'F'},
	{"0N;}", 'F'},
	{"0N?", 'F'},
	{"0N?&", 'F'},
	{"0N?(", 'F'},
	{"0N?)", 'F'},
	{"0N?,", 'F'},
	{"0N?.", 'F'},
	{"0N?1", 'F'},
	{"0N?:", 'F'},
	{"0N?;", 'F'},
	{"0N??", 'F'},
	{"0N?A", 'F'},
	{"0N?B", 'F'},
	{"0N?C", 'F'},
	{"0N?E", 'F'},
	{"0N?F", 'F'},
	{"0N?K", 'F'},
	{"0N?N", 'F'},
	{"0N?O", 'F'},
	{"0N?S", 'F'},
	{"0N?T", 'F'},
	{"0N?U", 'F'},
	{"0N?V", 'F'},
	{"0N?X", 'F'},
	{"0N?\\", 'F'},
	{"0N?{", 'F'},
	{"0N?}", 'F'},
	{"0NA", 'F'},
	{"0NA&", 'F'},
	{"0NA(", 'F'},
	{"0NA)", 'F'},
	{"0NA,", 'F'},
	{"0NA.", 'F'},
	{"0NA1", 'F'},
	{"0NA:", 'F'},
	{"0NA;", 'F'},
	{"0NA?", 'F'},
	{"0NAA", 'F'},
	{"0NAB", 'F'},
	{"0NAC", 'F'},
	{"0NAE", 'F'},
	{"0NAF", 'F'},
	{"0NAK", 'F'},
	{"0NAN", 'F'},
	{"0NAO", 'F'},
	{"0NAS", 'F'},
	{"0NAT", 'F'},
	{"0NAU", 'F'},
	{"0NAV", 'F'},
	{"0NAX", 'F'},
	{"0NA\\", 'F'},
	{"0NA{", 'F'},
	{"0NA}", 'F'},
	{"0NB", 'F'},
	{"0NB&", 'F'},
	{"0NB(", 'F'},
	{"0NB)", 'F'},
	{"0NB,", 'F'},
	{"0NB.", 'F'},
	{"0NB1", 'F'},
	{"0NB:", 'F'},
	{"0NB;", 'F'},
	{"0NB?", 'F'},
	{"0NBA", 'F'},
	{"0NBB", 'F'},
	{"0NBC", 'F'},
	{"0NBE", 'F'},
	{"0NBF", 'F'},
	{"0NBK", 'F'},
	{"0NBN", 'F'},
	{"0NBO", 'F'},
	{"0NBS", 'F'},
	{"0NBT", 'F'},
	{"0NBU", 'F'},
	{"0NBV", 'F'},
	{"0NBX", 'F'},
	{"0NB\\", 'F'},
	{"0NB{", 'F'},
	{"0NB}", 'F'},
	{"0NC", 'F'},
	{"0NC&", 'F'},
	{"0NC(", 'F'},
	{"0NC)", 'F'},
	{"0NC,", 'F'},
	{"0NC.", 'F'},
	{"0NC1", 'F'},
	{"0NC:", 'F'},
	{"0NC;", 'F'},
	{"0NC?", 'F'},
	{"0NCA", 'F'},
	{"0NCB", 'F'},
	{"0NCC", 'F'},
	{"0NCE", 'F'},
	{"0NCF", 'F'},
	{"0NCK", 'F'},
	{"0NCN", 'F'},
	{"0NCO", 'F'},
	{"0NCS", 'F'},
	{"0NCT", 'F'},
	{"0NCU", 'F'},
	{"0NCV", 'F'},
	{"0NCX", 'F'},
	{"0NC\\", 'F'},
	{"0NC{", 'F'},
	{"0NC}", 'F'},
	{"0NE", 'F'},
	{"0NE&", 'F'},
	{"0NE(", 'F'},
	{"0NE)", 'F'},
	{"0NE,", 'F'},
	{"0NE.", 'F'},
	{"0NE1", 'F'},
	{"0NE:", 'F'},
	{"0NE;", 'F'},
	{"0NE?", 'F'},
	{"0NEA", 'F'},
	{"0NEB", 'F'},
	{"0NEC", 'F'},
	{"0NEE", 'F'},
	{"0NEF", 'F'},
	{"0NEK", 'F'},
	{"0NEN", 'F'},
	{"0NEO", 'F'},
	{"0NES", 'F'},
	{"0NET", 'F'},
	{"0NEU", 'F'},
	{"0NEV", 'F'},
	{"0NEX", 'F'},
	{"0NE\\", 'F'},
	{"0NE{", 'F'},
	{"0NE}", 'F'},
	{"0NF", 'F'},
	{"0NF&", 'F'},
	{"0NF(", 'F'},
	{"0NF)", 'F'},
	{"0NF,", 'F'},
	{"0NF.", 'F'},
	{"0NF1", 'F'},
	{"0NF:", 'F'},
	{"0NF;", 'F'},
	{"0NF?", 'F'},
	{"0NFA", 'F'},
	{"0NFB", 'F'},
	{"0NFC", 'F'},
	{"0NFE", 'F'},
	{"0NFF", 'F'},
	{"0NFK", 'F'},
	{"0NFN", 'F'},
	{"0NFO", 'F'},
	{"0NFS", 'F'},
	{"0NFT", 'F'},
	{"0NFU", 'F'},
	{"0NFV", 'F'},
	{"0NFX", 'F'},
	{"0NF\\", 'F'},
	{"0NF{", 'F'},
	{"0NF}", 'F'},
	{"0NK", 'F'},
	{"0NK&", 'F'},
	{"0NK(", 'F'},
	{"0NK)", 'F'},
	{"0NK,", 'F'},
	{"0NK.", 'F'},
	{"0NK1", 'F'},
	{"0NK:", 'F'},
	{"0NK;", 'F'},
	{"0NK?", 'F'},
	{"0NKA", 'F'},
	{"0NKB", 'F'},
	{"0NKC", 'F'},
	{"0NKE", 'F'},
	{"0NKF", 'F'},
	{"0NKK", 'F'},
	{"0NKN", 'F'},
	{"0NKO", 'F'},
	{"0NKS", 'F'},
	{"0NKT", 'F'},
	{"0NKU", 'F'},
	{"0NKV", 'F'},
	{"0NKX", 'F'},
	{"0NK\\", 'F'},
	{"0NK{", 'F'},
	{"0NK}", 'F'},
	{"0NN", 'F'},
	{"0NN&", 'F'},
	{"0NN(", 'F'},
	{"0NN)", 'F'},
	{"0NN,", 'F'},
	{"0NN.", 'F'},
	{"0NN1", 'F'},
	{"0NN:", 'F'},
	{"0NN;", 'F'},
	{"0NN?", 'F'},
	{"0NNA", 'F'},
	{"0NNB", 'F'},
	{"0NNC", 'F'},
	{"0NNE", 'F'},
	{"0NNF", 'F'},
	{"0NNK", 'F'},
	{"0NNN", 'F'},
	{"0NNO", 'F'},
	{"0NNS", 'F'},
	{"0NNT", 'F'},
	{"0NNU", 'F'},
	{"0NNV", 'F'},
	{"0NNX", 'F'},
	{"0NN\\", 'F'},
	{"0NN{", 'F'},
	{"0NN}", 'F'},
	{"0NO", 'F'},
	{"0NO&", 'F'},
	{"0NO(", 'F'},
	{"0NO)", 'F'},
	{"0NO,", 'F'},
	{"0NO.", 'F'},
	{"0NO1", 'F'},
	{"0NO:", 'F'},
	{"0NO;", 'F'},
	{"0NO?", 'F'},
	{"0NOA", 'F'},
	{"0NOB", 'F'},
	{"0NOC", 'F'},
	{"0NOE", 'F'},
	{"0NOF", 'F'},
	{"0NOK", 'F'},
	{"0NON", 'F'},
	{"0NOO", 'F'},
	{"0NOS", 'F'},
	{"0NOT", 'F'},
	{"0NOU", 'F'},
	{"0NOV", 'F'},
	{"0NOX", 'F'},
	{"0NO\\", 'F'},
	{"0NO{", 'F'},
	{"0NO}", 'F'},
	{"0NS", 'F'},
	{"0NS&", 'F'},
	{"0NS(", 'F'},
	{"0NS)", 'F'},
	{"0NS,", 'F'},
	{"0NS.", 'F'},
	{"0NS1", 'F'},
	{"0NS:", 'F'},
	{"0NS;", 'F'},
	{"0NS?", 'F'},
	{"0NSA", 'F'},
	{"0NSB", 'F'},
	{"0NSC", 'F'},
	{"0NSE", 'F'},
	{"0NSF", 'F'},
	{"0NSK", 'F'},
	{"0NSN", 'F'},
	{"0NSO", 'F'},
	{"0NSS", 'F'},
	{"0NST", 'F'},
	{"0NSU", 'F'},
	{"0NSV", 'F'},
	{"0NSX", 'F'},
	{"0NS\\", 'F'},
	{"0NS{", 'F'},
	{"0NS}", 'F'},
	{"0NT", 'F'},
	{"0NT&", 'F'},
	{"0NT(", 'F'},
	{"0NT)", 'F'},
	{"0NT,", 'F'},
	{"0NT.", 'F'},
	{"0NT1", 'F'},
	{"0NT:", 'F'},
	{"0NT;", 'F'},
	{"0NT?", 'F'},
	{"0NTA", 'F'},
	{"0NTB", 'F'},
	{"0NTC", 'F'},
	{"0NTE", 'F'},
	{"0NTF", 'F'},
	{"0NTK", 'F'},
	{"0NTN", 'F'},
	{"0NTO", 'F'},
	{"0NTS", 'F'},
	{"0NTT", 'F'},
	{"0NTU", 'F'},
	{"0NTV", 'F'},
	{"0NTX", 'F'},
	{"0NT\\", 'F'},
	{"0NT{", 'F'},
	{"0NT}", 'F'},
	{"0NU", 'F'},
	{"0NU&", 'F'},
	{"0NU(", 'F'},
	{"0NU)", 'F'},
	{"0NU,", 'F'},
	{"0NU.", 'F'},
	{"0NU1", 'F'},
	{"0NU:", 'F'},
	{"0NU;", 'F'},
	{"0NU?", 'F'},
	{"0NUA", 'F'},
	{"0NUB", 'F'},
	{"0NUC", 'F'},
	{"0NUE", 'F'},
	{"0NUF", 'F'},
	{"0NUK", 'F'},
	{"0NUN", 'F'},
	{"0NUO", 'F'},
	{"0NUS", 'F'},
	{"0NUT", 'F'},
	{"0NUU", 'F'},
	{"0NUV", 'F'},
	{"0NUX", 'F'},
	{"0NU\\", 'F'},
	{"0NU{", 'F'},
	{"0NU}", 'F'},
	{"0NV", 'F'},
	{"0NV&", 'F'},
	{"0NV(", 'F'},
	{"0NV)", 'F'},
	{"0NV,", 'F'},
	{"0NV.", 'F'},
	{"0NV1", 'F'},
	{"0NV:", 'F'},
	{"0NV;", 'F'},
	{"0NV?", 'F'},
	{"0NVA", 'F'},
	{"0NVB", 'F'},
	{"0NVC", 'F'},
	{"0NVE", 'F'},
	{"0NVF", 'F'},
	{"0NVK", 'F'},
	{"0NVN", 'F'},
	{"0NVO", 'F'},
	{"0NVS", 'F'},
	{"0NVT", 'F'},
	{"0NVU", 'F'},
	{"0NVV", 'F'},
	{"0NVX", 'F'},
	{"0NV\\", 'F'},
	{"0NV{", 'F'},
	{"0NV}", 'F'},
	{"0NX", 'F'},
	{"0NX&", 'F'},
	{"0NX(", 'F'},
	{"0NX)", 'F'},
	{"0NX,", 'F'},
	{"0NX.", 'F'},
	{"0NX1", 'F'},
	{"0NX:", 'F'},
	{"0NX;", 'F'},
	{"0NX?", 'F'},
	{"0NXA", 'F'},
	{"0NXB", 'F'},
	{"0NXC", 'F'},
	{"0NXE", 'F'},
	{"0NXF", 'F'},
	{"0NXK", 'F'},
	{"0NXN", 'F'},
	{"0NXO", 'F'},
	{"0NXS", 'F'},
	{"0NXT", 'F'},
	{"0NXU", 'F'},
	{"0NXV", 'F'},
	{"0NXX", 'F'},
	{"0NX\\", 'F'},
	{"0NX{", 'F'},
	{"0NX}", 'F'},
	{"0N\\", 'F'},
	{"0N\\&", 'F'},
	{"0N\\(", 'F'},
	{"0N\\)", 'F'},
	{"0N\\,", 'F'},
	{"0N\\.", 'F'},
	{"0N\\1", 'F'},
	{"0N\\:", 'F'},
	{"0N\\;", 'F'},
	{"0N\\?", 'F'},
	{"0N\\A", 'F'},
	{"0N\\B", 'F'},
	{"0N\\C", 'F'},
	{"0N\\E", 'F'},
	{"0N\\F", 'F'},
	{"0N\\K", 'F'},
	{"0N\\N", 'F'},
	{"0N\\O", 'F'},
	{"0N\\S", 'F'},
	{"0N\\T", 'F'},
	{"0N\\U", 'F'},
	{"0N\\V", 'F'},
	{"0N\\X", 'F'},
	{"0N\\\\", 'F'},
	{"0N\\{", 'F'},
	{"0N\\}", 'F'},
	{"0N{", 'F'},
	{"0N{&", 'F'},
	{"0N{(", 'F'},
	{"0N{)", 'F'},
	{"0N{,", 'F'},
	{"0N{.", 'F'},
	{"0N{1", 'F'},
	{"0N{:", 'F'},
	{"0N{;", 'F'},
	{"0N{?", 'F'},
	{"0N{A", 'F'},
	{"0N{B", 'F'},
	{"0N{C", 'F'},
	{"0N{E", 'F'},
	{"0N{F", 'F'},
	{"0N{K", 'F'},
	{"0N{N", 'F'},
	{"0N{O", 'F'},
	{"0N{S", 'F'},
	{"0N{T", 'F'},
	{"0N{U", 'F'},
	{"0N{V", 'F'},
	{"0N{X", 'F'},
	{"0N{\\", 'F'},
	{"0N{{", 'F'},
	{"0N{}", 'F'},
	{"0N}", 'F'},
	{"0N}&", 'F'},
	{"0N}(", 'F'},
	{"0N})", 'F'},
	{"0N},", 'F'},
	{"0N}.", 'F'},
	{"0N}1", 'F'},
	{"0N}:", 'F'},
	{"0N};", 'F'},
	{"0N}?", 'F'},
	{"0N}A", 'F'},
	{"0N}B", 'F'},
	{"0N}C", 'F'},
	{"0N}E", 'F'},
	{"0N}F", 'F'},
	{"0N}K", 'F'},
	{"0N}N", 'F'},
	{"0N}O", 'F'},
	{"0N}S", 'F'},
	{"0N}T", 'F'},
	{"0N}U", 'F'},
	{"0N}V", 'F'},
	{"0N}X", 'F'},
	{"0N}\\", 'F'},
	{"0N}{", 'F'},
	{"0N}}", 'F'},
	{"0O&", 'F'},
	{"0O&&", 'F'},
	{"0O&(", 'F'},
	{"0O&)", 'F'},
	{"0O&,", 'F'},
	{"0O&.", 'F'},
	{"0O&1", 'F'},
	{"0O&:", 'F'},
	{"0O&;", 'F'},
	{"0O&?", 'F'},
	{"0O&A", 'F'},
	{"0O&B", 'F'},
	{"0O&C", 'F'},
	{"0O&E", 'F'},
	{"0O&F", 'F'},
	{"0O&K", 'F'},
	{"0O&N", 'F'},
	{"0O&O", 'F'},
	{"0O&S", 'F'},
	{"0O&T", 'F'},
	{"0O&U", 'F'},
	{"0O&V", 'F'},
	{"0O&X", 'F'},
	{"0O&\\", 'F'},
	{"0O&{", 'F'},
	{"0O&}", 'F'},
	{"0O(", 'F'},
	{"0O(&", 'F'},
	{"0O((", 'F'},
	{"0O()", 'F'},
	{"0O(,", 'F'},
	{"0O(.", 'F'},
	{"0O(1", 'F'},
	{"0O(:", 'F'},
	{"0O(;", 'F'},
	{"0O(?", 'F'},
	{"0O(A", 'F'},
	{"0O(B", 'F'},
	{"0O(C", 'F'},
	{"0O(E", 'F'},
	{"0O(F", 'F'},
	{"0O(K", 'F'},
	{"0O(N", 'F'},
	{"0O(O", 'F'},
	{"0O(S", 'F'},
	{"0O(T", 'F'},
	{"0O(U", 'F'},
	{"0O(V", 'F'},
	{"0O(X", 'F'},
	{"0O(\\", 'F'},
	{"0O({", 'F'},
	{"0O(}", 'F'},
	{"0O)", 'F'},
	{"0O)&", 'F'},
	{"0O)(", 'F'},
	{"0O))", 'F'},
	{"0O),", 'F'},
	{"0O).", 'F'},
	{"0O)1", 'F'},
	{"0O):", 'F'},
	{"0O);", 'F'},
	{"0O)?", 'F'},
	{"0O)A", 'F'},
	{"0O)B", 'F'},
	{"0O)C", 'F'},
	{"0O)E", 'F'},
	{"0O)F", 'F'},
	{"0O)K", 'F'},
	{"0O)N", 'F'},
	{"0O)O", 'F'},
	{"0O)S", 'F'},
	{"0O)T", 'F'},
	{"0O)U", 'F'},
	{"0O)V", 'F'},
	{"0O)X", 'F'},
	{"0O)\\", 'F'},
	{"0O){", 'F'},
	{"0O)}", 'F'},
	{"0O,", 'F'},
	{"0O,&", 'F'},
	{"0O,(", 'F'},
	{"0O,)", 'F'},
	{"0O,,", 'F'},
	{"0O,.", 'F'},
	{"0O,1", 'F'},
	{"0O,:", 'F'},
	{"0O,;", 'F'},
	{"0O,?", 'F'},
	{"0O,A", 'F'},
	{"0O,B", 'F'},
	{"0O,C", 'F'},
	{"0O,E", 'F'},
	{"0O,F", 'F'},
	{"0O,K", 'F'},
	{"0O,N", 'F'},
	{"0O,O", 'F'},
	{"0O,S", 'F'},
	{"0O,T", 'F'},
	{"0O,U", 'F'},
	{"0O,V", 'F'},
	{"0O,X", 'F'},
	{"0O,\\", 'F'},
	{"0O,{", 'F'},
	{"0O,}", 'F'},
	{"0O.", 'F'},
	{"0O.&", 'F'},
	{"0O.(", 'F'},
	{"0O.)", 'F'},
	{"0O.,", 'F'},
	{"0O..", 'F'},
	{"0O.1", 'F'},
	{"0O.:", 'F'},
	{"0O.;", 'F'},
	{"0O.?", 'F'},
	{"0O.A", 'F'},
	{"0O.B", 'F'},
	{"0O.C", 'F'},
	{"0O.E", 'F'},
	{"0O.F", 'F'},
	{"0O.K", 'F'},
	{"0O.N", 'F'},
	{"0O.O", 'F'},
	{"0O.S", 'F'},
	{"0O.T", 'F'},
	{"0O.U", 'F'},
	{"0O.V", 'F'},
	{"0O.X", 'F'},
	{"0O.\\", 'F'},
	{"0O.{", 'F'},
	{"0O.}", 'F'},
	{"0O1", 'F'},
	{"0O1&", 'F'},
	{"0O1(", 'F'},
	{"0O1)", 'F'},
	{"0O1,", 'F'},
	{"0O1.", 'F'},
	{"0O11", 'F'},
	{"0O1:", 'F'},
	{"0O1;", 'F'},
	{"0O1?", 'F'},
	{"0O1A", 'F'},
	{"0O1B", 'F'},
	{"0O1C", 'F'},
	{"0O1E", 'F'},
	{"0O1F", 'F'},
	{"0O1K", 'F'},
	{"0O1N", 'F'},
	{"0O1O", 'F'},
	{"0O1S", 'F'},
	{"0O1T", 'F'},
	{"0O1U", 'F'},
	{"0O1V", 'F'},
	{"0O1X", 'F'},
	{"0O1\\", 'F'},
	{"0O1{", 'F'},
	{"0O1}", 'F'},
	{"0O:", 'F'},
	{"0O:&", 'F'},
	{"0O:(", 'F'},
	{"0O:)", 'F'},
	{"0O:,", 'F'},
	{"0O:.", 'F'},
	{"0O:1", 'F'},
	{"0O::", 'F'},
	{"0O:;", 'F'},
	{"0O:?", 'F'},
	{"0O:A", 'F'},
	{"0O:B", 'F'},
	{"0O:C", 'F'},
	{"0O:E", 'F'},
	{"0O:F", 'F'},
	{"0O:K", 'F'},
	{"0O:N", 'F'},
	{"0O:O", 'F'},
	{"0O:S", 'F'},
	{"0O:T", 'F'},
	{"0O:U", 'F'},
	{"0O:V", 'F'},
	{"0O:X", 'F'},
	{"0O:\\", 'F'},
	{"0O:{", 'F'},
	{"0O:}", 'F'},
	{"0O;", 'F'},
	{"0O;&", 'F'},
	{"0O;(", 'F'},
	{"0O;)", 'F'},
	{"0O;,", 'F'},
	{"0O;.", 'F'},
	{"0O;1", 'F'},
	{"0O;:", 'F'},
	{"0O;;", 'F'},
	{"0O;?", 'F'},
	{"0O;A", 'F'},
	{"0O;B", 'F'},
	{"0O;C", 'F'},
	{"0O;E", 'F'},
	{"0O;F", 'F'},
	{"0O;K", 'F'},
	{"0O;N", 'F'},
	{"0O;O", 'F'},
	{"0O;S", 'F'},
	{"0O;T", 'F'},
	{"0O;U", 'F'},
	{"0O;V", 'F'},
	{"0O;X", 'F'},
	{"0O;\\", 'F'},
	{"0O;{", 'F'},
	{"0O;}", 'F'},
	{"0O?", 'F'},
	{"0O?&", 'F'},
	{"0O?(", 'F'},
	{"0O?)", 'F'},
	{"0O?,", 'F'},
	{"0O?.", 'F'},
	{"0O?1", 'F'},
	{"0O?:", 'F'},
	{"0O?;", 'F'},
	{"0O??", 'F'},
	{"0O?A", 'F'},
	{"0O?B", 'F'},
	{"0O?C", 'F'},
	{"0O?E", 'F'},
	{"0O?F", 'F'},
	{"0O?K", 'F'},
	{"0O?N", 'F'},
	{"0O?O", 'F'},
	{"0O?S", 'F'},
	{"0O?T", 'F'},
	{"0O?U", 'F'},
	{"0O?V", 'F'},
	{"0O?X", 'F'},
	{"0O?\\", 'F'},
	{"0O?{", 'F'},
	{"0O?}", 'F'},
	{"0OA", 'F'},
	{"0OA&", 'F'},
	{"0OA(", 'F'},
	{"0OA)", 'F'},
	{"0OA,", 'F'},
	{"0OA.", 'F'},
	{"0OA1", 'F'},
	{"0OA:", 'F'},
	{"0OA;", 'F'},
	{"0OA?", 'F'},
	{"0OAA", 'F'},
	{"0OAB", 'F'},
	{"0OAC", 'F'},
	{"0OAE", 'F'},
	{"0OAF", 'F'},
	{"0OAK", 'F'},
	{"0OAN", 'F'},
	{"0OAO", 'F'},
	{"0OAS", 'F'},
	{"0OAT", 'F'},
	{"0OAU", 'F'},
	{"0OAV", 'F'},
	{"0OAX", 'F'},
	{"0OA\\", 'F'},
	{"0OA{", 'F'},
	{"0OA}", 'F'},
	{"0OB", 'F'},
	{"0OB&", 'F'},
	{"0OB(", 'F'},
	{"0OB)", 'F'},
	{"0OB,", 'F'},
	{"0OB.", 'F'},
	{"0OB1", 'F'},
	{"0OB:", 'F'},
	{"0OB;", 'F'},
	{"0OB?", 'F'},
	{"0OBA", 'F'},
	{"0OBB", 'F'},
	{"0OBC", 'F'},
	{"0OBE", 'F'},
	{"0OBF", 'F'},
	{"0OBK", 'F'},
	{"0OBN", 'F'},
	{"0OBO", 'F'},
	{"0OBS", 'F'},
	{"0OBT", 'F'},
	{"0OBU", 'F'},
	{"0OBV", 'F'},
	{"0OBX", 'F'},
	{"0OB\\", 'F'},
	{"0OB{", 'F'},
	{"0OB}", 'F'},
	{"0OC", 'F'},
	{"0OC&", 'F'},
	{"0OC(", 'F'},
	{"0OC)", 'F'},
	{"0OC,", 'F'},
	{"0OC.", 'F'},
	{"0OC1", 'F'},
	{"0OC:", 'F'},
	{"0OC;", 'F'},
	{"0OC?", 'F'},
	{"0OCA", 'F'},
	{"0OCB", 'F'},
	{"0OCC", 'F'},
	{"0OCE", 'F'},
	{"0OCF", 'F'},
	{"0OCK", 'F'},
	{"0OCN", 'F'},
	{"0OCO", 'F'},
	{"0OCS", 'F'},
	{"0OCT", 'F'},
	{"0OCU", 'F'},
	{"0OCV", 'F'},
	{"0OCX", 'F'},
	{"0OC\\", 'F'},
	{"0OC{", 'F'},
	{"0OC}", 'F'},
	{"0OE", 'F'},
	{"0OE&", 'F'},
	{"0OE(", 'F'},
	{"0OE)", 'F'},
	{"0OE,", 'F'},
	{"0OE.", 'F'},
	{"0OE1", 'F'},
	{"0OE:", 'F'},
	{"0OE;", 'F'},
	{"0OE?", 'F'},
	{"0OEA", 'F'},
	{"0OEB", 'F'},
	{"0OEC", 'F'},
	{"0OEE", 'F'},
	{"0OEF", 'F'},
	{"0OEK", 'F'},
	{"0OEN", 'F'},
	{"0OEO", 'F'},
	{"0OES", 'F'},
	{"0OET", 'F'},
	{"0OEU", 'F'},
	{"0OEV", 'F'},
	{"0OEX", 'F'},
	{"0OE\\", 'F'},
	{"0OE{", 'F'},
	{"0OE}", 'F'},
	{"0OF", 'F'},
	{"0OF&", 'F'},
	{"0OF(", 'F'},
	{"0OF)", 'F'},
	{"0OF,", 'F'},
	{"0OF.", 'F'},
	{"0OF1", 'F'},
	{"0OF:", 'F'},
	{"0OF;", 'F'},
	{"0OF?", 'F'},
	{"0OFA", 'F'},
	{"0OFB", 'F'},
	{"0OFC", 'F'},
	{"0OFE", 'F'},
	{"0OFF", 'F'},
	{"0OFK", 'F'},
	{"0OFN", 'F'},
	{"0OFO", 'F'},
	{"0OFS", 'F'},
	{"0OFT", 'F'},
	{"0OFU", 'F'},
	{"0OFV", 'F'},
	{"0OFX", 'F'},
	{"0OF\\", 'F'},
	{"0OF{", 'F'},
	{"0OF}", 'F'},
	{"0OK", 'F'},
	{"0OK&", 'F'},
	{"0OK(", 'F'},
	{"0OK)", 'F'},
	{"0OK,", 'F'},
	{"0OK.", 'F'},
	{"0OK1", 'F'},
	{"0OK:", 'F'},
	{"0OK;", 'F'},
	{"0OK?", 'F'},
	{"0OKA", 'F'},
	{"0OKB", 'F'},
	{"0OKC", 'F'},
	{"0OKE", 'F'},
	{"0OKF", 'F'},
	{"0OKK", 'F'},
	{"0OKN", 'F'},
	{"0OKO", 'F'},
	{"0OKS", 'F'},
	{"0OKT", 'F'},
	{"0OKU", 'F'},
	{"0OKV", 'F'},
	{"0OKX", 'F'},
	{"0OK\\", 'F'},
	{"0OK{", 'F'},
	{"0OK}", 'F'},
	{"0ON", 'F'},
	{"0ON&", 'F'},
	{"0ON(", 'F'},
	{"0ON)", 'F'},
	{"0ON,", 'F'},
	{"0ON.", 'F'},
	{"0ON1", 'F'},
	{"0ON:", 'F'},
	{"0ON;", 'F'},
	{"0ON?", 'F'},
	{"0ONA", 'F'},
	{"0ONB", 'F'},
	{"0ONC", 'F'},
	{"0ONE", 'F'},
	{"0ONF", 'F'},
	{"0ONK", 'F'},
	{"0ONN", 'F'},
	{"0ONO", 'F'},
	{"0ONS", 'F'},
	{"0ONT", 'F'},
	{"0ONU", 'F'},
	{"0ONV", 'F'},
	{"0ONX", 'F'},
	{"0ON\\", 'F'},
	{"0ON{", 'F'},
	{"0ON}", 'F'},
	{"0OO", 'F'},
	{"0OO&", 'F'},
	{"0OO(", 'F'},
	{"0OO)", 'F'},
	{"0OO,", 'F'},
	{"0OO.", 'F'},
	{"0OO1", 'F'},
	{"0OO:", 'F'},
	{"0OO;", 'F'},
	{"0OO?", 'F'},
	{"0OOA", 'F'},
	{"0OOB", 'F'},
	{"0OOC", 'F'},
	{"0OOE", 'F'},
	{"0OOF", 'F'},
	{"0OOK", 'F'},
	{"0OON", 'F'},
	{"0OOO", 'F'},
	{"0OOS", 'F'},
	{"0OOT", 'F'},
	{"0OOU", 'F'},
	{"0OOV", 'F'},
	{"0OOX", 'F'},
	{"0OO\\", 'F'},
	{"0OO{", 'F'},
	{"0OO}", 'F'},
	{"0OS", 'F'},
	{"0OS&", 'F'},
	{"0OS(", 'F'},
	{"0OS)", 'F'},
	{"0OS,", 'F'},
	{"0OS.", 'F'},
	{"0OS1", 'F'},
	{"0OS:", 'F'},
	{"0OS;", 'F'},
	{"0OS?", 'F'},
	{"0OSA", 'F'},
	{"0OSB", 'F'},
	{"0OSC", 'F'},
	{"0OSE", 'F'},
	{"0OSF", 'F'},
	{"0OSK", 'F'},
	{"0OSN", 'F'},
	{"0OSO", 'F'},
	{"0OSS", 'F'},
	{"0OST", 'F'},
	{"0OSU", 'F'},
	{"0OSV", 'F'},
	{"0OSX", 'F'},
	{"0OS\\", 'F'},
	{"0OS{", 'F'},
	{"0OS}", 'F'},
	{"0OT", 'F'},
	{"0OT&", 'F'},
	{"0OT(", 'F'},
	{"0OT)", 'F'},
	{"0OT,", 'F'},
	{"0OT.", 'F'},
	{"0OT1", 'F'},
	{"0OT:", 'F'},
	{"0OT;", 'F'},
	{"0OT?", 'F'},
	{"0OTA", 'F'},
	{"0OTB", 'F'},
	{"0OTC", 'F'},
	{"0OTE", 'F'},
	{"0OTF", 'F'},
	{"0OTK", 'F'},
	{"0OTN", 'F'},
	{"0OTO", 'F'},
	{"0OTS", 'F'},
	{"0OTT", 'F'},
	{"0OTU", 'F'},
	{"0OTV", 'F'},
	{"0OTX", 'F'},
	{"0OT\\", 'F'},
	{"0OT{", 'F'},
	{"0OT}", 'F'},
	{"0OU", 'F'},
	{"0OU&", 'F'},
	{"0OU(", 'F'},
	{"0OU)", 'F'},
	{"0OU,", 'F'},
	{"0OU.", 'F'},
	{"0OU1", 'F'},
	{"0OU:", 'F'},
	{"0OU;", 'F'},
	{"0OU?", 'F'},
	{"0OUA", 'F'},
	{"0OUB", 'F'},
	{"0OUC", 'F'},
	{"0OUE", 'F'},
	{"0OUF", 'F'},
	{"0OUK", 'F'},
	{"0OUN", 'F'},
	{"0OUO", 'F'},
	{"0OUS", 'F'},
	{"0OUT", 'F'},
	{"0OUU", 'F'},
	{"0OUV", 'F'},
	{"0OUX", 'F'},
	{"0OU\\", 'F'},
	{"0OU{", 'F'},
	{"0OU}", 'F'},
	{"0OV", 'F'},
	{"0OV&", 'F'},
	{"0OV(", 'F'},
	{"0OV)", 'F'},
	{"0OV,", 'F'},
	{"0OV.", 'F'},
	{"0OV1", 'F'},
	{"0OV:", 'F'},
	{"0OV;", 'F'},
	{"0OV?", 'F'},
	{"0OVA", 'F'},
	{"0OVB", 'F'},
	{"0OVC", 'F'},
	{"0OVE", 'F'},
	{"0OVF", 'F'},
	{"0OVK", 'F'},
	{"0OVN", 'F'},
	{"0OVO", 'F'},
	{"0OVS", 'F'},
	{"0OVT", 'F'},
	{"0OVU", 'F'},
	{"0OVV", 'F'},
	{"0OVX", 'F'},
	{"0OV\\", 'F'},
	{"0OV{", 'F'},
	{"0OV}", 'F'},
	{"0OX", 'F'},
	{"0OX&", 'F'},
	{"0OX(", 'F'},
	{"0OX)", 'F'},
	{"0OX,", 'F'},
	{"0OX.", 'F'},
	{"0OX1", 'F'},
	{"0OX:", 'F'},
	{"0OX;", 'F'},
	{"0OX?", 'F'},
	{"0OXA", 'F'},
	{"0OXB", 'F'},
	{"0OXC", 'F'},
	{"0OXE", 'F'},
	{"0OXF", 'F'},
	{"0OXK", 'F'},
	{"0OXN", 'F'},
	{"0OXO", 'F'},
	{"0OXS", 'F'},
	{"0OXT", 'F'},
	{"0OXU", 'F'},
	{"0OXV", 'F'},
	{"0OXX", 'F'},
	{"0OX\\", 'F'},
	{"0OX{", 'F'},
	{"0OX}", 'F'},
	{"0O\\", 'F'},
	{"0O\\&", 'F'},
	{"0O\\(", 'F'},
	{"0O\\)", 'F'},
	{"0O\\,", 'F'},
	{"0O\\.", 'F'},
	{"0O\\1", 'F'},
	{"0O\\:", 'F'},
	{"0O\\;", 'F'},
	{"0O\\?", 'F'},
	{"0O\\A", 'F'},
	{"0O\\B", 'F'},
	{"0O\\C", 'F'},
	{"0O\\E", 'F'},
	{"0O\\F", 'F'},
	{"0O\\K", 'F'},
	{"0O\\N", 'F'},
	{"0O\\O", 'F'},
	{"0O\\S", 'F'},
	{"0O\\T", 'F'},
	{"0O\\U", 'F'},
	{"0O\\V", 'F'},
	{"0O\\X", 'F'},
	{"0O\\\\", 'F'},
	{"0O\\{", 'F'},
	{"0O\\}", 'F'},
	{"0O{", 'F'},
	{"0O{&", 'F'},
	{"0O{(", 'F'},
	{"0O{)", 'F'},
	{"0O{,", 'F'},
	{"0O{.", 'F'},
	{"0O{1", 'F'},
	{"0O{:", 'F'},
	{"0O{;", 'F'},
	{"0O{?", 'F'},
	{"0O{A", 'F'},
	{"0O{B", 'F'},
	{"0O{C", 'F'},
	{"0O{E", 'F'},
	{"0O{F", 'F'},
	{"0O{K", 'F'},
	{"0O{N", 'F'},
	{"0O{O", 'F'},
	{"0O{S", 'F'},
	{"0O{T", 'F'},
	{"0O{U", 'F'},
	{"0O{V", 'F'},
	{"0O{X", 'F'},
	{"0O{\\", 'F'},
	{"0O{{", 'F'},
	{"0O{}", 'F'},
	{"0O}", 'F'},
	{"0O}&", 'F'},
	{"0O}(", 'F'},
	{"0O})", 'F'},
	{"0O},", 'F'},
	{"0O}.", 'F'},
	{"0O}1", 'F'},
	{"0O}:", 'F'},
	{"0O};", 'F'},
	{"0O}?", 'F'},
	{"0O}A", 'F'},
	{"0O}B", 'F'},
	{"0O}C", 'F'},
	{"0O}E", 'F'},
	{"0O}F", 'F'},
	{"0O}K", 'F'},
	{"0O}N", 'F'},
	{"0O}O", 'F'},
	{"0O}S", 'F'},
	{"0O}T", 'F'},
	{"0O}U", 'F'},
	{"0O}V", 'F'},
	{"0O}X", 'F'},
	{"0O}\\", 'F'},
	{"0O}{", 'F'},
	{"0O}}", 'F'},
	{"0S&", 'F'},
	{"0S&&", 'F'},
	{"0S&(", 'F'},
	{"0S&)", 'F'},
	{"0S&,", 'F'},
	{"0S&.", 'F'},
	{"0S&1", 'F'},
	{"0S&:", 'F'},
	{"0S&;", 'F'},
	{"0S&?", 'F'},
	{"0S&A", 'F'},
	{"0S&B", 'F'},
	{"0S&C", 'F'},
	{"0S&E", 'F'},
	{"0S&F", 'F'},
	{"0S&K", 'F'},
	{"0S&N", 'F'},
	{"0S&O", 'F'},
	{"0S&S", 'F'},
	{"0S&T", 'F'},
	{"0S&U", 'F'},
	{"0S&V", 'F'},
	{"0S&X", 'F'},
	{"0S&\\", 'F'},
	{"0S&{", 'F'},
	{"0S&}", 'F'},
	{"0S(", 'F'},
	{"0S(&", 'F'},
	{"0S((", 'F'},
	{"0S()", 'F'},
	{"0S(,", 'F'},
	{"0S(.", 'F'},
	{"0S(1", 'F'},
	{"0S(:", 'F'},
	{"0S(;", 'F'},
	{"0S(?", 'F'},
	{"0S(A", 'F'},
	{"0S(B", 'F'},
	{"0S(C", 'F'},
	{"0S(E", 'F'},
	{"0S(F", 'F'},
	{"0S(K", 'F'},
	{"0S(N", 'F'},
	{"0S(O", 'F'},
	{"0S(S", 'F'},
	{"0S(T", 'F'},
	{"0S(U", 'F'},
	{"0S(V", 'F'},
	{"0S(X", 'F'},
	{"0S(\\", 'F'},
	{"0S({", 'F'},
	{"0S(}", 'F'},
	{"0S)", 'F'},
	{"0S)&", 'F'},
	{"0S)(", 'F'},
	{"0S))", 'F'},
	{"0S),", 'F'},
	{"0S).", 'F'},
	{"0S)1", 'F'},
	{"0S):", 'F'},
	{"0S);", 'F'},
	{"0S)?", 'F'},
	{"0S)A", 'F'},
	{"0S)B", 'F'},
	{"0S)C", 'F'},
	{"0S)E", 'F'},
	{"0S)F", 'F'},
	{"0S)K", 'F'},
	{"0S)N", 'F'},
	{"0S)O", 'F'},
	{"0S)S", 'F'},
	{"0S)T", 'F'},
	{"0S)U", 'F'},
	{"0S)V", 'F'},
	{"0S)X", 'F'},
	{"0S)\\", 'F'},
	{"0S){", 'F'},
	{"0S)}", 'F'},
	{"0S,", 'F'},
	{"0S,&", 'F'},
	{"0S,(", 'F'},
	{"0S,)", 'F'},
	{"0S,,", 'F'},
	{"0S,.", 'F'},
	{"0S,1", 'F'},
	{"0S,:", 'F'},
	{"0S,;", 'F'},
	{"0S,?", 'F'},
	{"0S,A", 'F'},
	{"0S,B", 'F'},
	{"0S,C", 'F'},
	{"0S,E", 'F'},
	{"0S,F", 'F'},
	{"0S,K", 'F'},
	{"0S,N", 'F'},
	{"0S,O", 'F'},
	{"0S,S", 'F'},
	{"0S,T", 'F'},
	{"0S,U", 'F'},
	{"0S,V", 'F'},
	{"0S,X", 'F'},
	{"0S,\\", 'F'},
	{"0S,{", 'F'},
	{"0S,}", 'F'},
	{"0S.", 'F'},
	{"0S.&", 'F'},
	{"0S.(", 'F'},
	{"0S.)", 'F'},
	{"0S.,", 'F'},
	{"0S..", 'F'},
	{"0S.1", 'F'},
	{"0S.:", 'F'},
	{"0S.;", 'F'},
	{"0S.?", 'F'},
	{"0S.A", 'F'},
	{"0S.B", 'F'},
	{"0S.C", 'F'},
	{"0S.E", 'F'},
	{"0S.F", 'F'},
	{"0S.K", 'F'},
	{"0S.N", 'F'},
	{"0S.O", 'F'},
	{"0S.S", 'F'},
	{"0S.T", 'F'},
	{"0S.U", 'F'},
	{"0S.V", 'F'},
	{"0S.X", 'F'},
	{"0S.\\", 'F'},
	{"0S.{", 'F'},
	{"0S.}", 'F'},
	{"0S1", 'F'},
	{"0S1&", 'F'},
	{"0S1(", 'F'},
	{"0S1)", 'F'},
	{"0S1,", 'F'},
	{"0S1.", 'F'},
	{"0S11", 'F'},
	{"0S1:", 'F'},
	{"0S1;", 'F'},
	{"0S1?", 'F'},
	{"0S1A", 'F'},
	{"0S1B", 'F'},
	{"0S1C", 'F'},
	{"0S1E", 'F'},
	{"0S1F", 'F'},
	{"0S1K", 'F'},
	{"0S1N", 'F'},
	{"0S1O", 'F'},
	{"0S1S", 'F'},
	{"0S1T", 'F'},
	{"0S1U", 'F'},
	{"0S1V", 'F'},
	{"0S1X", 'F'},
	{"0S1\\", 'F'},
	{"0S1{", 'F'},
	{"0S1}", 'F'},
	{"0S:", 'F'},
	{"0S:&", 'F'},
	{"0S:(", 'F'},
	{"0S:)", 'F'},
	{"0S:,", 'F'},
	{"0S:.", 'F'},
	{"0S:1", 'F'},
	{"0S::", 'F'},
	{"0S:;", 'F'},
	{"0S:?", 'F'},
	{"0S:A", 'F'},
	{"0S:B", 'F'},
	{"0S:C", 'F'},
	{"0S:E", 'F'},
	{"0S:F", 'F'},
	{"0S:K", 'F'},
	{"0S:N", 'F'},
	{"0S:O", 'F'},
	{"0S:S", 'F'},
	{"0S:T", 'F'},
	{"0S:U", 'F'},
	{"0S:V", 'F'},
	{"0S:X", 'F'},
	{"0S:\\", 'F'},
	{"0S:{", 'F'},
	{"0S:}", 'F'},
	{"0S;", 'F'},
	{"0S;&", 'F'},
	{"0S;(", 'F'},
	{"0S;)", 'F'},
	{"0S;,", 'F'},
	{"0S;.", 'F'},
	{"0S;1", 'F'},
	{"0S;:", 'F'},
	{"0S;;", 'F'},
	{"0S;?", 'F'},
	{"0S;A", 'F'},
	{"0S;B", 'F'},
	{"0S;C", 'F'},
	{"0S;E", 'F'},
	{"0S;F", 'F'},
	{"0S;K", 'F'},
	{"0S;N", 'F'},
	{"0S;O", 'F'},
	{"0S;S", 'F'},
	{"0S;T", 'F'},
	{"0S;U", 'F'},
	{"0S;V", 'F'},
	{"0S;X", 'F'},
	{"0S;\\", 'F'},
	{"0S;{", 'F'},
	{"0S;}", 'F'},
	{"0S?", 'F'},
	{"0S?&", 'F'},
	{"0S?(", 'F'},
	{"0S?)", 'F'},
	{"0S?,", 'F'},
	{"0S?.", 'F'},
	{"0S?1", 'F'},
	{"0S?:", 'F'},
	{"0S?;", 'F'},
	{"0S??", 'F'},
	{"0S?A", 'F'},
	{"0S?B", 'F'},
	{"0S?C", 'F'},
	{"0S?E", 'F'},
	{"0S?F", 'F'},
	{"0S?K", 'F'},
	{"0S?N", 'F'},
	{"0S?O", 'F'},
	{"0S?S", 'F'},
	{"0S?T", 'F'},
	{"0S?U", 'F'},
	{"0S?V", 'F'},
	{"0S?X", 'F'},
	{"0S?\\", 'F'},
	{"0S?{", 'F'},
	{"0S?}", 'F'},
	{"0SA", 'F'},
	{"0SA&", 'F'},
	{"0SA(", 'F'},
	{"0SA)", 'F'},
	{"0SA,", 'F'},
	{"0SA.", 'F'},
	{"0SA1", 'F'},
	{"0SA:", 'F'},
	{"0SA;", 'F'},
	{"0SA?", 'F'},
	{"0SAA", 'F'},
	{"0SAB", 'F'},
	{"0SAC", 'F'},
	{"0SAE", 'F'},
	{"0SAF", 'F'},
	{"0SAK", 'F'},
	{"0SAN", 'F'},
	{"0SAO", 'F'},
	{"0SAS", 'F'},
	{"0SAT", 'F'},
	{"0SAU", 'F'},
	{"0SAV", 'F'},
	{"0SAX", 'F'},
	{"0SA\\", 'F'},
	{"0SA{", 'F'},
	{"0SA}", 'F'},
	{"0SB", 'F'},
	{"0SB&", 'F'},
	{"0SB(", 'F'},
	{"0SB)", 'F'},
	{"0SB,", 'F'},
	{"0SB.", 'F'},
	{"0SB1", 'F'},
	{"0SB:", 'F'},
	{"0SB;", 'F'},
	{"0SB?", 'F'},
	{"0SBA", 'F'},
	{"0SBB", 'F'},
	{"0SBC", 'F'},
	{"0SBE", 'F'},
	{"0SBF", 'F'},
	{"0SBK", 'F'},
	{"0SBN", 'F'},
	{"0SBO", 'F'},
	{"0SBS", 'F'},
	{"0SBT", 'F'},
	{"0SBU", 'F'},
	{"0SBV", 'F'},
	{"0SBX", 'F'},
	{"0SB\\", 'F'},
	{"0SB{", 'F'},
	{"0SB}", 'F'},
	{"0SC", 'F'},
	{"0SC&", 'F'},
	{"0SC(", 'F'},
	{"0SC)", 'F'},
	{"0SC,", 'F'},
	{"0SC.", 'F'},
	{"0SC1", 'F'},
	{"0SC:", 'F'},
	{"0SC;", 'F'},
	{"0SC?", 'F'},
	{"0SCA", 'F'},
	{"0SCB", 'F'},
	{"0SCC", 'F'},
	{"0SCE", 'F'},
	{"0SCF", 'F'},
	{"0SCK", 'F'},
	{"0SCN", 'F'},
	{"0SCO", 'F'},
	{"0SCS", 'F'},
	{"0SCT", 'F'},
	{"0SCU", 'F'},
	{"0SCV", 'F'},
	{"0SCX", 'F'},
	{"0SC\\", 'F'},
	{"0SC{", 'F'},
	{"0SC}", 'F'},
	{"0SE", 'F'},
	{"0SE&", 'F'},
	{"0SE(", 'F'},
	{"0SE)", 'F'},
	{"0SE,", 'F'},
	{"0SE.", 'F'},
	{"0SE1", 'F'},
	{"0SE:", 'F'},
	{"0SE;", 'F'},
	{"0SE?", 'F'},
	{"0SEA", 'F'},
	{"0SEB", 'F'},
	{"0SEC", 'F'},
	{"0SEE", 'F'},
	{"0SEF", 'F'},
	{"0SEK", 'F'},
	{"0SEN", 'F'},
	{"0SEO", 'F'},
	{"0SES", 'F'},
	{"0SET", 'F'},
	{"0SEU", 'F'},
	{"0SEV", 'F'},
	{"0SEX", 'F'},
	{"0SE\\", 'F'},
	{"0SE{", 'F'},
	{"0SE}", 'F'},
	{"0SF", 'F'},
	{"0SF&", 'F'},
	{"0SF(", 'F'},
	{"0SF)", 'F'},
	{"0SF,", 'F'},
	{"0SF.", 'F'},
	{"0SF1", 'F'},
	{"0SF:", 'F'},
	{"0SF;", 'F'},
	{"0SF?", 'F'},
	{"0SFA", 'F'},
	{"0SFB", 'F'},
	{"0SFC", 'F'},
	{"0SFE", 'F'},
	{"0SFF", 'F'},
	{"0SFK", 'F'},
	{"0SFN", 'F'},
	{"0SFO", 'F'},
	{"0SFS", 'F'},
	{"0SFT", 'F'},
	{"0SFU", 'F'},
	{"0SFV", 'F'},
	{"0SFX", 'F'},
	{"0SF\\", 'F'},
	{"0SF{", 'F'},
	{"0SF}", 'F'},
	{"0SK", 'F'},
	{"0SK&", 'F'},
	{"0SK(", 'F'},
	{"0SK)", 'F'},
	{"0SK,", 'F'},
	{"0SK.", 'F'},
	{"0SK1", 'F'},
	{"0SK:", 'F'},
	{"0SK;", 'F'},
	{"0SK?", 'F'},
	{"0SKA", 'F'},
	{"0SKB", 'F'},
	{"0SKC", 'F'},
	{"0SKE", 'F'},
	{"0SKF", 'F'},
	{"0SKK", 'F'},
	{"0SKN", 'F'},
	{"0SKO", 'F'},
	{"0SKS", 'F'},
	{"0SKT", 'F'},
	{"0SKU", 'F'},
	{"0SKV", 'F'},
	{"0SKX", 'F'},
	{"0SK\\", 'F'},
	{"0SK{", 'F'},
	{"0SK}", 'F'},
	{"0SN", 'F'},
	{"0SN&", 'F'},
	{"0SN(", 'F'},
	{"0SN)", 'F'},
	{"0SN,", 'F'},
	{"0SN.", 'F'},
	{"0SN1", 'F'},
	{"0SN:", 'F'},
	{"0SN;", 'F'},
	{"0SN?", 'F'},
	{"0SNA", 'F'},
	{"0SNB", 'F'},
	{"0SNC", 'F'},
	{"0SNE", 'F'},
	{"0SNF", 'F'},
	{"0SNK", 'F'},
	{"0SNN", 'F'},
	{"0SNO", 'F'},
	{"0SNS", 'F'},
	{"0SNT", 'F'},
	{"0SNU", 'F'},
	{"0SNV", 'F'},
	{"0SNX", 'F'},
	{"0SN\\", 'F'},
	{"0SN{", 'F'},
	{"0SN}", 'F'},
	{"0SO", 'F'},
	{"0SO&", 'F'},
	{"0SO(", 'F'},
	{"0SO)", 'F'},
	{"0SO,", 'F'},
	{"0SO.", 'F'},
	{"0SO1", 'F'},
	{"0SO:", 'F'},
	{"0SO;", 'F'},
	{"0SO?", 'F'},
	{"0SOA", 'F'},
	{"0SOB", 'F'},
	{"0SOC", 'F'},
	{"0SOE", 'F'},
	{"0SOF", 'F'},
	{"0SOK", 'F'},
	{"0SON", 'F'},
	{"0SOO", 'F'},
	{"0SOS", 'F'},
	{"0SOT", 'F'},
	{"0SOU", 'F'},
	{"0SOV", 'F'},
	{"0SOX", 'F'},
	{"0SO\\", 'F'},
	{"0SO{", 'F'},
	{"0SO}", 'F'},
	{"0SS", 'F'},
	{"0SS&", 'F'},
	{"0SS(", 'F'},
	{"0SS)", 'F'},
	{"0SS,", 'F'},
	{"0SS.", 'F'},
	{"0SS1", 'F'},
	{"0SS:", 'F'},
	{"0SS;", 'F'},
	{"0SS?", 'F'},
	{"0SSA", 'F'},
	{"0SSB", 'F'},
	{"0SSC", 'F'},
	{"0SSE", 'F'},
	{"0SSF", 'F'},
	{"0SSK", 'F'},
	{"0SSN", 'F'},
	{"0SSO", 'F'},
	{"0SSS", 'F'},
	{"0SST", 'F'},
	{"0SSU", 'F'},
	{"0SSV", 'F'},
	{"0SSX", 'F'},
	{"0SS\\", 'F'},
	{"0SS{", 'F'},
	{"0SS}", 'F'},
	{"0ST", 'F'},
	{"0ST&", 'F'},
	{"0ST(", 'F'},
	{"0ST)", 'F'},
	{"0ST,", 'F'},
	{"0ST.", 'F'},
	{"0ST1", 'F'},
	{"0ST:", 'F'},
	{"0ST;", 'F'},
	{"0ST?", 'F'},
	{"0STA", 'F'},
	{"0STB", 'F'},
	{"0STC", 'F'},
	{"0STE", 'F'},
	{"0STF", 'F'},
	{"0STK", 'F'},
	{"0STN", 'F'},
	{"0STO", 'F'},
	{"0STS", 'F'},
	{"0STT", 'F'},
	{"0STU", 'F'},
	{"0STV", 'F'},
	{"0STX", 'F'},
	{"0ST\\", 'F'},
	{"0ST{", 'F'},
	{"0ST}", 'F'},
	{"0SU", 'F'},
	{"0SU&", 'F'},
	{"0SU(", 'F'},
	{"0SU)", 'F'},
	{"0SU,", 'F'},
	{"0SU.", 'F'},
	{"0SU1", 'F'},
	{"0SU:", 'F'},
	{"0SU;", 'F'},
	{"0SU?", 'F'},
	{"0SUA", 'F'},
	{"0SUB", 'F'},
	{"0SUC", 'F'},
	{"0SUE", 'F'},
	{"0SUF", 'F'},
	{"0SUK", 'F'},
	{"0SUN", 'F'},
	{"0SUO", 'F'},
	{"0SUS", 'F'},
	{"0SUT", 'F'},
	{"0SUU", 'F'},
	{"0SUV", 'F'},
	{"0SUX", 'F'},
	{"0SU\\", 'F'},
	{"0SU{", 'F'},
	{"0SU}", 'F'},
	{"0SV", 'F'},
	{"0SV&", 'F'},
	{"0SV(", 'F'},
	{"0SV)", 'F'},
	{"0SV,", 'F'},
	{"0SV.", 'F'},
	{"0SV1", 'F'},
	{"0SV:", 'F'},
	{"0SV;", 'F'},
	{"0SV?", 'F'},
	{"0SVA", 'F'},
	{"0SVB", 'F'},
	{"0SVC", 'F'},
	{"0SVE", 'F'},
	{"0SVF", 'F'},
	{"0SVK", 'F'},
	{"0SVN", 'F'},
	{"0SVO", 'F'},
	{"0SVS", 'F'},
	{"0SVT", 'F'},
	{"0SVU", 'F'},
	{"0SVV", 'F'},
	{"0SVX", 'F'},
	{"0SV\\", 'F'},
	{"0SV{", 'F'},
	{"0SV}", 'F'},
	{"0SX", 'F'},
	{"0SX&", 'F'},
	{"0SX(", 'F'},
	{"0SX)", 'F'},
	{"0SX,", 'F'},
	{"0SX.", 'F'},
	{"0SX1", 'F'},
	{"0SX:", 'F'},
	{"0SX;", 'F'},
	{"0SX?", 'F'},
	{"0SXA", 'F'},
	{"0SXB", 'F'},
	{"0SXC", 'F'},
	{"0SXE", 'F'},
	{"0SXF", 'F'},
	{"0SXK", 'F'},
	{"0SXN", 'F'},
	{"0SXO", 'F'},
	{"0SXS", 'F'},
	{"0SXT", 'F'},
	{"0SXU", 'F'},
	{"0SXV", 'F'},
	{"0SXX", 'F'},
	{"0SX\\", 'F'},
	{"0SX{", 'F'},
	{"0SX}", 'F'},
	{"0S\\", 'F'},
	{"0S\\&", 'F'},
	{"0S\\(", 'F'},
	{"0S\\)", 'F'},
	{"0S\\,", 'F'},
	{"0S\\.", 'F'},
	{"0S\\1", 'F'},
	{"0S\\:", 'F'},
	{"0S\\;", 'F'},
	{"0S\\?", 'F'},
	{"0S\\A", 'F'},
	{"0S\\B", 'F'},
	{"0S\\C", 'F'},
	{"0S\\E", 'F'},
	{"0S\\F", 'F'},
	{"0S\\K", 'F'},
	{"0S\\N", 'F'},
	{"0S\\O", 'F'},
	{"0S\\S", 'F'},
	{"0S\\T", 'F'},
	{"0S\\U", 'F'},
	{"0S\\V", 'F'},
	{"0S\\X", 'F'},
	{"0S\\\\", 'F'},
	{"0S\\{", 'F'},
	{"0S\\}", 'F'},
	{"0S{", 'F'},
	{"0S{&", 'F'},
	{"0S{(", 'F'},
	{"0S{)", 'F'},
	{"0S{,", 'F'},
	{"0S{.", 'F'},
	{"0S{1", 'F'},
	{"0S{:", 'F'},
	{"0S{;", 'F'},
	{"0S{?", 'F'},
	{"0S{A", 'F'},
	{"0S{B", 'F'},
	{"0S{C", 'F'},
	{"0S{E", 'F'},
	{"0S{F", 'F'},
	{"0S{K", 'F'},
	{"0S{N", 'F'},
	{"0S{O", 'F'},
	{"0S{S", 'F'},
	{"0S{T", 'F'},
	{"0S{U", 'F'},
	{"0S{V", 'F'},
	{"0S{X", 'F'},
	{"0S{\\", 'F'},
	{"0S{{", 'F'},
	{"0S{}", 'F'},
	{"0S}", 'F'},
	{"0S}&", 'F'},
	{"0S}(", 'F'},
	{"0S})", 'F'},
	{"0S},", 'F'},
	{"0S}.", 'F'},
	{"0S}1", 'F'},
	{"0S}:", 'F'},
	{"0S};", 'F'},
	{"0S}?", 'F'},
	{"0S}A", 'F'},
	{"0S}B", 'F'},
	{"0S}C", 'F'},
	{"0S}E", 'F'},
	{"0S}F", 'F'},
	{"0S}K", 'F'},
	{"0S}N", 'F'},
	{"0S}O", 'F'},
	{"0S}S", 'F'},
	{"0S}T", 'F'},
	{"0S}U", 'F'},
	{"0S}V", 'F'},
	{"0S}X", 'F'},
	{"0S}\\", 'F'},
	{"0S}{", 'F'},
	{"0S}}", 'F'},
	{"0T&", 'F'},
	{"0T(", 'F'},
	{"0T)", 'F'},
	{"0T,", 'F'},
	{"0T.", 'F'},
	{"0T1", 'F'},
	{"0T:", 'F'},
	{"0T;", 'F'},
	{"0T?", 'F'},
	{"0TA", 'F'},
	{"0TB", 'F'},
	{"0TC", 'F'},
	{"0TE", 'F'},
	{"0TF", 'F'},
	{"0TK", 'F'},
	{"0TN", 'F'},
	{"0TO", 'F'},
	{"0TS", 'F'},
	{"0TT", 'F'},
	{"0TU", 'F'},
	{"0TV", 'F'},
	{"0TX", 'F'},
	{"0T\\", 'F'},
	{"0T{", 'F'},
	{"0T}", 'F'},
	{"0U&", 'F'},
	{"0U&&", 'F'},
	{"0U&(", 'F'},
	{"0U&)", 'F'},
	{"0U&,", 'F'},
	{"0U&.", 'F'},
	{"0U&1", 'F'},
	{"0U&:", 'F'},
	{"0U&;", 'F'},
	{"0U&?", 'F'},
	{"0U&A", 'F'},
	{"0U&B", 'F'},
	{"0U&C", 'F'},
	{"0U&E", 'F'},
	{"0U&F", 'F'},
	{"0U&K", 'F'},
	{"0U&N", 'F'},
	{"0U&O", 'F'},
	{"0U&S", 'F'},
	{"0U&T", 'F'},
	{"0U&U", 'F'},
	{"0U&V", 'F'},
	{"0U&X", 'F'},
	{"0U&\\", 'F'},
	{"0U&{", 'F'},
	{"0U&}", 'F'},
	{"0U(", 'F'},
	{"0U(&", 'F'},
	{"0U((", 'F'},
	{"0U()", 'F'},
	{"0U(,", 'F'},
	{"0U(.", 'F'},
	{"0U(1", 'F'},
	{"0U(:", 'F'},
	{"0U(;", 'F'},
	{"0U(?", 'F'},
	{"0U(A", 'F'},
	{"0U(B", 'F'},
	{"0U(C", 'F'},
	{"0U(E", 'F'},
	{"0U(F", 'F'},
	{"0U(K", 'F'},
	{"0U(N", 'F'},
	{"0U(O", 'F'},
	{"0U(S", 'F'},
	{"0U(T", 'F'},
	{"0U(U", 'F'},
	{"0U(V", 'F'},
	{"0U(X", 'F'},
	{"0U(\\", 'F'},
	{"0U({", 'F'},
	{"0U(}", 'F'},
	{"0U)", 'F'},
	{"0U)&", 'F'},
	{"0U)(", 'F'},
	{"0U))", 'F'},
	{"0U),", 'F'},
	{"0U).", 'F'},
	{"0U)1", 'F'},
	{"0U):", 'F'},
	{"0U);", 'F'},
	{"0U)?", 'F'},
	{"0U)A", 'F'},
	{"0U)B", 'F'},
	{"0U)C", 'F'},
	{"0U)E", 'F'},
	{"0U)F", 'F'},
	{"0U)K", 'F'},
	{"0U)N", 'F'},
	{"0U)O", 'F'},
	{"0U)S", 'F'},
	{"0U)T", 'F'},
	{"0U)U", 'F'},
	{"0U)V", 'F'},
	{"0U)X", 'F'},
	{"0U)\\", 'F'},
	{"0U){", 'F'},
	{"0U)}", 'F'},
	{"0U,", 'F'},
	{"0U,&", 'F'},
	{"0U,(", 'F'},
	{"0U,)", 'F'},
	{"0U,,", 'F'},
	{"0U,.", 'F'},
	{"0U,1", 'F'},
	{"0U,:", 'F'},
	{"0U,;", 'F'},
	{"0U,?", 'F'},
	{"0U,A", 'F'},
	{"0U,B", 'F'},
	{"0U,C", 'F'},
	{"0U,E", 'F'},
	{"0U,F", 'F'},
	{"0U,K", 'F'},
	{"0U,N", 'F'},
	{"0U,O", 'F'},
	{"0U,S", 'F'},
	{"0U,T", 'F'},
	{"0U,U", 'F'},
	{"0U,V", 'F'},
	{"0U,X", 'F'},
	{"0U,\\", 'F'},
	{"0U,{", 'F'},
	{"0U,}", 'F'},
	{"0U.", 'F'},
	{"0U.&", 'F'},
	{"0U.(", 'F'},
	{"0U.)", 'F'},
	{"0U.,", 'F'},
	{"0U..", 'F'},
	{"0U.1", 'F'},
	{"0U.:", 'F'},
	{"0U.;", 'F'},
	{"0U.?", 'F'},
	{"0U.A", 'F'},
	{"0U.B", 'F'},
	{"0U.C", 'F'},
	{"0U.E", 'F'},
	{"0U.F", 'F'},
	{"0U.K", 'F'},
	{"0U.N", 'F'},
	{"0U.O", 'F'},
	{"0U.S", 'F'},
	{"0U.T", 'F'},
	{"0U.U", 'F'},
	{"0U.V", 'F'},
	{"0U.X", 'F'},
	{"0U.\\", 'F'},
	{"0U.{", 'F'},
	{"0U.}", 'F'},
	{"0U1", 'F'},
	{"0U1&", 'F'},
	{"0U1(", 'F'},
	{"0U1)", 'F'},
	{"0U1,", 'F'},
	{"0U1.", 'F'},
	{"0U11", 'F'},
	{"0U1:", 'F'},
	{"0U1;", 'F'},
	{"0U1?", 'F'},
	{"0U1A", 'F'},
	{"0U1B", 'F'},
	{"0U1C", 'F'},
	{"0U1E", 'F'},
	{"0U1F", 'F'},
	{"0U1K", 'F'},
	{"0U1N", 'F'},
	{"0U1O", 'F'},
	{"0U1S", 'F'},
	{"0U1T", 'F'},
	{"0U1U", 'F'},
	{"0U1V", 'F'},
	{"0U1X", 'F'},
	{"0U1\\", 'F'},
	{"0U1{", 'F'},
	{"0U1}", 'F'},
	{"0U:", 'F'},
	{"0U:&", 'F'},
	{"0U:(", 'F'},
	{"0U:)", 'F'},
	{"0U:,", 'F'},
	{"0U:.", 'F'},
	{"0U:1", 'F'},
	{"0U::", 'F'},
	{"0U:;", 'F'},
	{"0U:?", 'F'},
	{"0U:A", 'F'},
	{"0U:B", 'F'},
	{"0U:C", 'F'},
	{"0U:E", 'F'},
	{"0U:F", 'F'},
	{"0U:K", 'F'},
	{"0U:N", 'F'},
	{"0U:O", 'F'},
	{"0U:S", 'F'},
	{"0U:T", 'F'},
	{"0U:U", 'F'},
	{"0U:V", 'F'},
	{"0U:X", 'F'},
	{"0U:\\", 'F'},
	{"0U:{", 'F'},
	{"0U:}", 'F'},
	{"0U;", 'F'},
	{"0U;&", 'F'},
	{"0U;(", 'F'},
	{"0U;)", 'F'},
	{"0U;,", 'F'},
	{"0U;.", 'F'},
	{"0U;1", 'F'},
	{"0U;:", 'F'},
	{"0U;;", 'F'},
	{"0U;?", 'F'},
	{"0U;A", 'F'},
	{"0U;B", 'F'},
	{"0U;C", 'F'},
	{"0U;E", 'F'},
	{"0U;F", 'F'},
	{"0U;K", 'F'},
	{"0U;N", 'F'},
	{"0U;O", 'F'},
	{"0U;S", 'F'},
	{"0U;T", 'F'},
	{"0U;U", 'F'},
	{"0U;V", 'F'},
	{"0U;X", 'F'},
	{"0U;\\", 'F'},
	{"0U;{", 'F'},
	{"0U;}", 'F'},
	{"0U?", 'F'},
	{"0U?&", 'F'},
	{"0U?(", 'F'},
	{"0U?)", 'F'},
	{"0U?,", 'F'},
	{"0U?.", 'F'},
	{"0U?1", 'F'},
	{"0U?:", 'F'},
	{"0U?;", 'F'},
	{"0U??", 'F'},
	{"0U?A", 'F'},
	{"0U?B", 'F'},
	{"0U?C", 'F'},
	{"0U?E", 'F'},
	{"0U?F", 'F'},
	{"0U?K", 'F'},
	{"0U?N", 'F'},
	{"0U?O", 'F'},
	{"0U?S", 'F'},
	{"0U?T", 'F'},
	{"0U?U", 'F'},
	{"0U?V", 'F'},
	{"0U?X", 'F'},
	{"0U?\\", 'F'},
	{"0U?{", 'F'},
	{"0U?}", 'F'},
	{"0UA", 'F'},
	{"0UA&", 'F'},
	{"0UA(", 'F'},
	{"0UA)", 'F'},
	{"0UA,", 'F'},
	{"0UA.", 'F'},
	{"0UA1", 'F'},
	{"0UA:", 'F'},
	{"0UA;", 'F'},
	{"0UA?", 'F'},
	{"0UAA", 'F'},
	{"0UAB", 'F'},
	{"0UAC", 'F'},
	{"0UAE", 'F'},
	{"0UAF", 'F'},
	{"0UAK", 'F'},
	{"0UAN", 'F'},
	{"0UAO", 'F'},
	{"0UAS", 'F'},
	{"0UAT", 'F'},
	{"0UAU", 'F'},
	{"0UAV", 'F'},
	{"0UAX", 'F'},
	{"0UA\\", 'F'},
	{"0UA{", 'F'},
	{"0UA}", 'F'},
	{"0UB", 'F'},
	{"0UB&", 'F'},
	{"0UB(", 'F'},
	{"0UB)", 'F'},
	{"0UB,", 'F'},
	{"0UB.", 'F'},
	{"0UB1", 'F'},
	{"0UB:", 'F'},
	{"0UB;", 'F'},
	{"0UB?", 'F'},
	{"0UBA", 'F'},
	{"0UBB", 'F'},
	{"0UBC", 'F'},
	{"0UBE", 'F'},
	{"0UBF", 'F'},
	{"0UBK", 'F'},
	{"0UBN", 'F'},
	{"0UBO", 'F'},
	{"0UBS", 'F'},
	{"0UBT", 'F'},
	{"0UBU", 'F'},
	{"0UBV", 'F'},
	{"0UBX", 'F'},
	{"0UB\\", 'F'},
	{"0UB{", 'F'},
	{"0UB}", 'F'},
	{"0UC", 'F'},
	{"0UC&", 'F'},
	{"0UC(", 'F'},
	{"0UC)", 'F'},
	{"0UC,", 'F'},
	{"0UC.", 'F'},
	{"0UC1", 'F'},
	{"0UC:", 'F'},
	{"0UC;", 'F'},
	{"0UC?", 'F'},
	{"0UCA", 'F'},
	{"0UCB", 'F'},
	{"0UCC", 'F'},
	{"0UCE", 'F'},
	{"0UCF", 'F'},
	{"0UCK", 'F'},
	{"0UCN", 'F'},
	{"0UCO", 'F'},
	{"0UCS", 'F'},
	{"0UCT", 'F'},
	{"0UCU", 'F'},
	{"0UCV", 'F'},
	{"0UCX", 'F'},
	{"0UC\\", 'F'},
	{"0UC{", 'F'},
	{"0UC}", 'F'},
	{"0UE", 'F'},
	{"0UE&", 'F'},
	{"0UE(", 'F'},
	{"0UE)", 'F'},
	{"0UE,", 'F'},
	{"0UE.", 'F'},
	{"0UE1", 'F'},
	{"0UE:", 'F'},
	{"0UE;", 'F'},
	{"0UE?", 'F'},
	{"0UEA", 'F'},
	{"0UEB", 'F'},
	{"0UEC", 'F'},
	{"0UEE", 'F'},
	{"0UEF", 'F'},
	{"0UEK", 'F'},
	{"0UEN", 'F'},
	{"0UEO", 'F'},
	{"0UES", 'F'},
	{"0UET", 'F'},
	{"0UEU", 'F'},
	{"0UEV", 'F'},
	{"0UEX", 'F'},
	{"0UE\\", 'F'},
	{"0UE{", 'F'},
	{"0UE}", 'F'},
	{"0UF", 'F'},
	{"0UF&", 'F'},
	{"0UF(", 'F'},
	{"0UF)", 'F'},
	{"0UF,", 'F'},
	{"0UF.", 'F'},
	{"0UF1", 'F'},
	{"0UF:", 'F'},
	{"0UF;", 'F'},
	{"0UF?", 'F'},
	{"0UFA", 'F'},
	{"0UFB", 'F'},
	{"0UFC", 'F'},
	{"0UFE", 'F'},
	{"0UFF", 'F'},
	{"0UFK", 'F'},
	{"0UFN", 'F'},
	{"0UFO", 'F'},
	{"0UFS", 'F'},
	{"0UFT", 'F'},
	{"0UFU", 'F'},
	{"0UFV", 'F'},
	{"0UFX", 'F'},
	{"0UF\\", 'F'},
	{"0UF{", 'F'},
	{"0UF}", 'F'},
	{"0UK", 'F'},
	{"0UK&", 'F'},
	{"0UK(", 'F'},
	{"0UK)", 'F'},
	{"0UK,", 'F'},
	{"0UK.", 'F'},
	{"0UK1", 'F'},
	{"0UK:", 'F'},
	{"0UK;", 'F'},
	{"0UK?", 'F'},
	{"0UKA", 'F'},
	{"0UKB", 'F'},
	{"0UKC", 'F'},
	{"0UKE", 'F'},
	{"0UKF", 'F'},
	{"0UKK", 'F'},
	{"0UKN", 'F'},
	{"0UKO", 'F'},
	{"0UKS", 'F'},
	{"0UKT", 'F'},
	{"0UKU", 'F'},
	{"0UKV", 'F'},
	{"0UKX", 'F'},
	{"0UK\\", 'F'},
	{"0UK{", 'F'},
	{"0UK}", 'F'},
	{"0UN", 'F'},
	{"0UN&", 'F'},
	{"0UN(", 'F'},
	{"0UN)", 'F'},
	{"0UN,", 'F'},
	{"0UN.", 'F'},
	{"0UN1", 'F'},
	{"0UN:", 'F'},
	{"0UN;", 'F'},
	{"0UN?", 'F'},
	{"0UNA", 'F'},
	{"0UNB", 'F'},
	{"0UNC", 'F'},
	{"0UNE", 'F'},
	{"0UNF", 'F'},
	{"0UNK", 'F'},
	{"0UNN", 'F'},
	{"0UNO", 'F'},
	{"0UNS", 'F'},
	{"0UNT", 'F'},
	{"0UNU", 'F'},
	{"0UNV", 'F'},
	{"0UNX", 'F'},
	{"0UN\\", 'F'},
	{"0UN{", 'F'},
	{"0UN}", 'F'},
	{"0UO", 'F'},
	{"0UO&", 'F'},
	{"0UO(", 'F'},
	{"0UO)", 'F'},
	{"0UO,", 'F'},
	{"0UO.", 'F'},
	{"0UO1", 'F'},
	{"0UO:", 'F'},
	{"0UO;", 'F'},
	{"0UO?", 'F'},
	{"0UOA", 'F'},
	{"0UOB", 'F'},
	{"0UOC", 'F'},
	{"0UOE", 'F'},
	{"0UOF", 'F'},
	{"0UOK", 'F'},
	{"0UON", 'F'},
	{"0UOO", 'F'},
	{"0UOS", 'F'},
	{"0UOT", 'F'},
	{"0UOU", 'F'},
	{"0UOV", 'F'},
	{"0UOX", 'F'},
	{"0UO\\", 'F'},
	{"0UO{", 'F'},
	{"0UO}", 'F'},
	{"0US", 'F'},
	{"0US&", 'F'},
	{"0US(", 'F'},
	{"0US)", 'F'},
	{"0US,", 'F'},
	{"0US.", 'F'},
	{"0US1", 'F'},
	{"0US:", 'F'},
	{"0US;", 'F'},
	{"0US?", 'F'},
	{"0USA", 'F'},
	{"0USB", 'F'},
	{"0USC", 'F'},
	{"0USE", 'F'},
	{"0USF", 'F'},
	{"0USK", 'F'},
	{"0USN", 'F'},
	{"0USO", 'F'},
	{"0USS", 'F'},
	{"0UST", 'F'},
	{"0USU", 'F'},
	{"0USV", 'F'},
	{"0USX", 'F'},
	{"0US\\", 'F'},
	{"0US{", 'F'},
	{"0US}", 'F'},
	{"0UT", 'F'},
	{"0UT&", 'F'},
	{"0UT(", 'F'},
	{"0UT)", 'F'},
	{"0UT,", 'F'},
	{"0UT.", 'F'},
	{"0UT1", 'F'},
	{"0UT:", 'F'},
	{"0UT;", 'F'},
	{"0UT?", 'F'},
	{"0UTA", 'F'},
	{"0UTB", 'F'},
	{"0UTC", 'F'},
	{"0UTE", 'F'},
	{"0UTF", 'F'},
	{"0UTK", 'F'},
	{"0UTN", 'F'},
	{"0UTO", 'F'},
	{"0UTS", 'F'},
	{"0UTT", 'F'},
	{"0UTU", 'F'},
	{"0UTV", 'F'},
	{"0UTX", 'F'},
	{"0UT\\", 'F'},
	{"0UT{", 'F'},
	{"0UT}", 'F'},
	{"0UU", 'F'},
	{"0UU&", 'F'},
	{"0UU(", 'F'},
	{"0UU)", 'F'},
	{"0UU,", 'F'},
	{"0UU.", 'F'},
	{"0UU1", 'F'},
	{"0UU:", 'F'},
	{"0UU;", 'F'},
	{"0UU?", 'F'},
	{"0UUA", 'F'},
	{"0UUB", 'F'},
	{"0UUC", 'F'},
	{"0UUE", 'F'},
	{"0UUF", 'F'},
	{"0UUK", 'F'},
	{"0UUN", 'F'},
	{"0UUO", 'F'},
	{"0UUS", 'F'},
	{"0UUT", 'F'},
	{"0UUU", 'F'},
	{"0UUV", 'F'},
	{"0UUX", 'F'},
	{"0UU\\", 'F'},
	{"0UU{", 'F'},
	{"0UU}", 'F'},
	{"0UV", 'F'},
	{"0UV&", 'F'},
	{"0UV(", 'F'},
	{"0UV)", 'F'},
	{"0UV,", 'F'},
	{"0UV.", 'F'},
	{"0UV1", 'F'},
	{"0UV:", 'F'},
	{"0UV;", 'F'},
	{"0UV?", 'F'},
	{"0UVA", 'F'},
	{"0UVB", 'F'},
	{"0UVC", 'F'},
	{"0UVE", 'F'},
	{"0UVF", 'F'},
	{"0UVK", 'F'},
	{"0UVN", 'F'},
	{"0UVO", 'F'},
	{"0UVS", 'F'},
	{"0UVT", 'F'},
	{"0UVU", 'F'},
	{"0UVV", 'F'},
	{"0UVX", 'F'},
	{"0UV\\", 'F'},
	{"0UV{", 'F'},
	{"0UV}", 'F'},
	{"0UX", 'F'},
	{"0UX&", 'F'},
	{"0UX(", 'F'},
	{"0UX)", 'F'},
	{"0UX,", 'F'},
	{"0UX.", 'F'},
	{"0UX1", 'F'},
	{"0UX:", 'F'},
	{"0UX;", 'F'},
	{"0UX?", 'F'},
	{"0UXA", 'F'},
	{"0UXB", 'F'},
	{"0UXC", 'F'},
	{"0UXE", 'F'},
	{"0UXF", 'F'},
	{"0UXK", 'F'},
	{"0UXN", 'F'},
	{"0UXO", 'F'},
	{"0UXS", 'F'},
	{"0UXT", 'F'},
	{"0UXU", 'F'},
	{"0UXV", 'F'},
	{"0UXX", 'F'},
	{"0UX\\", 'F'},
	{"0UX{", 'F'},
	{"0UX}", 'F'},
	{"0U\\", 'F'},
	{"0U\\&", 'F'},
	{"0U\\(", 'F'},
	{"0U\\)", 'F'},
	{"0U\\,", 'F'},
	{"0U\\.", 'F'},
	{"0U\\1", 'F'},
	{"0U\\:", 'F'},
	{"0U\\;", 'F'},
	{"0U\\?", 'F'},
	{"0U\\A", 'F'},
	{"0U\\B", 'F'},
	{"0U\\C", 'F'},
	{"0U\\E", 'F'},
	{"0U\\F", 'F'},
	{"0U\\K", 'F'},
	{"0U\\N", 'F'},
	{"0U\\O", 'F'},
	{"0U\\S", 'F'},
	{"0U\\T", 'F'},
	{"0U\\U", 'F'},
	{"0U\\V", 'F'},
	{"0U\\X", 'F'},
	{"0U\\\\", 'F'},
	{"0U\\{", 'F'},
	{"0U\\}", 'F'},
	{"0U{", 'F'},
	{"0U{&", 'F'},
	{"0U{(", 'F'},
	{"0U{)", 'F'},
	{"0U{,", 'F'},
	{"0U{.", 'F'},
	{"0U{1", 'F'},
	{"0U{:", 'F'},
	{"0U{;", 'F'},
	{"0U{?", 'F'},
	{"0U{A", 'F'},
	{"0U{B", 'F'},
	{"0U{C", 'F'},
	{"0U{E", 'F'},
	{"0U{F", 'F'},
	{"0U{K", 'F'},
	{"0U{N", 'F'},
	{"0U{O", 'F'},
	{"0U{S", 'F'},
	{"0U{T", 'F'},
	{"0U{U", 'F'},
	{"0U{V", 'F'},
	{"0U{X", 'F'},
	{"0U{\\", 'F'},
	{"0U{{", 'F'},
	{"0U{}", 'F'},
	{"0U}", 'F'},
	{"0U}&", 'F'},
	{"0U}(", 'F'},
	{"0U})", 'F'},
	{"0U},", 'F'},
	{"0U}.", 'F'},
	{"0U}1", 'F'},
	{"0U}:", 'F'},
	{"0U};", 'F'},
	{"0U}?", 'F'},
	{"0U}A", 'F'},
	{"0U}B", 'F'},
	{"0U}C", 'F'},
	{"0U}E", 'F'},
	{"0U}F", 'F'},
	{"0U}K", 'F'},
	{"0U}N", 'F'},
	{"0U}O", 'F'},
	{"0U}S", 'F'},
	{"0U}T", 'F'},
	{"0U}U", 'F'},
	{"0U}V", 'F'},
	{"0U}X", 'F'},
	{"0U}\\", 'F'},
	{"0U}{", 'F'},
	{"0U}}", 'F'},
	{"0V&", 'F'},
	{"0V&&", 'F'},
	{"0V&(", 'F'},
	{"0V&)", 'F'},
	{"0V&,", 'F'},
	{"0V&.", 'F'},
	{"0V&1", 'F'},
	{"0V&:", 'F'},
	{"0V&;", 'F'},
	{"0V&?", 'F'},
	{"0V&A", 'F'},
	{"0V&B", 'F'},
	{"0V&C", 'F'},
	{"0V&E", 'F'},
	{"0V&F", 'F'},
	{"0V&K", 'F'},
	{"0V&N", 'F'},
	{"0V&O", 'F'},
	{"0V&S", 'F'},
	{"0V&T", 'F'},
	{"0V&U", 'F'},
	{"0V&V", 'F'},
	{"0V&X", 'F'},
	{"0V&\\", 'F'},
	{"0V&{", 'F'},
	{"0V&}", 'F'},
	{"0V(", 'F'},
	{"0V(&", 'F'},
	{"0V((", 'F'},
	{"0V()", 'F'},
	{"0V(,", 'F'},
	{"0V(.", 'F'},
	{"0V(1", 'F'},
	{"0V(:", 'F'},
	{"0V(;", 'F'},
	{"0V(?", 'F'},
	{"0V(A", 'F'},
	{"0V(B", 'F'},
	{"0V(C", 'F'},
	{"0V(E", 'F'},
	{"0V(F", 'F'},
	{"0V(K", 'F'},
	{"0V(N", 'F'},
	{"0V(O", 'F'},
	{"0V(S", 'F'},
	{"0V(T", 'F'},
	{"0V(U", 'F'},
	{"0V(V", 'F'},
	{"0V(X", 'F'},
	{"0V(\\", 'F'},
	{"0V({", 'F'},
	{"0V(}", 'F'},
	{"0V)", 'F'},
	{"0V)&", 'F'},
	{"0V)(", 'F'},
	{"0V))", 'F'},
	{"0V),", 'F'},
	{"0V).", 'F'},
	{"0V)1", 'F'},
	{"0V):", 'F'},
	{"0V);", 'F'},
	{"0V)?", 'F'},
	{"0V)A", 'F'},
	{"0V)B", 'F'},
	{"0V)C", 'F'},
	{"0V)E", 'F'},
	{"0V)F", 'F'},
	{"0V)K", 'F'},
	{"0V)N", 'F'},
	{"0V)O", 'F'},
	{"0V)S", 'F'},
	{"0V)T", 'F'},
	{"0V)U", 'F'},
	{"0V)V", 'F'},
	{"0V)X", 'F'},
	{"0V)\\", 'F'},
	{"0V){", 'F'},
	{"0V)}", 'F'},
	{"0V,", 'F'},
	{"0V,&", 'F'},
	{"0V,(", 'F'},
	{"0V,)", 'F'},
	{"0V,,", 'F'},
	{"0V,.", 'F'},
	{"0V,1", 'F'},
	{"0V,:", 'F'},
	{"0V,;", 'F'},
	{"0V,?", 'F'},
	{"0V,A", 'F'},
	{"0V,B", 'F'},
	{"0V,C", 'F'},
	{"0V,E", 'F'},
	{"0V,F", 'F'},
	{"0V,K", 'F'},
	{"0V,N", 'F'},
	{"0V,O", 'F'},
	{"0V,S", 'F'},
	{"0V,T", 'F'},
	{"0V,U", 'F'},
	{"0V,V", 'F'},
	{"0V,X", 'F'},
	{"0V,\\", 'F'},
	{"0V,{", 'F'},
	{"0V,}", 'F'},
	{"0V.", 'F'},
	{"0V.&", 'F'},
	{"0V.(", 'F'},
	{"0V.)", 'F'},
	{"0V.,", 'F'},
	{"0V..", 'F'},
	{"0V.1", 'F'},
	{"0V.:", 'F'},
	{"0V.;", 'F'},
	{"0V.?", 'F'},
	{"0V.A", 'F'},
	{"0V.B", 'F'},
	{"0V.C", 'F'},
	{"0V.E", 'F'},
	{"0V.F", 'F'},
	{"0V.K", 'F'},
	{"0V.N", 'F'},
	{"0V.O", 'F'},
	{"0V.S", 'F'},
	{"0V.T", 'F'},
	{"0V.U", 'F'},
	{"0V.V", 'F'},
	{"0V.X", 'F'},
	{"0V.\\", 'F'},
	{"0V.{", 'F'},
	{"0V.}", 'F'},
	{"0V1", 'F'},
	{"0V1&", 'F'},
	{"0V1(", 'F'},
	{"0V1)", 'F'},
	{"0V1,", 'F'},
	{"0V1.", 'F'},
	{"0V11", 'F'},
	{"0V1:", 'F'},
	{"0V1;", 'F'},
	{"0V1?", 'F'},
	{"0V1A", 'F'},
	{"0V1B", 'F'},
	{"0V1C", 'F'},
	{"0V1E", 'F'},
	{"0V1F", 'F'},
	{"0V1K", 'F'},
	{"0V1N", 'F'},
	{"0V1O", 'F'},
	{"0V1S", 'F'},
	{"0V1T", 'F'},
	{"0V1U", 'F'},
	{"0V1V", 'F'},
	{"0V1X", 'F'},
	{"0V1\\", 'F'},
	{"0V1{", 'F'},
	{"0V1}", 'F'},
	{"0V:", 'F'},
	{"0V:&", 'F'},
	{"0V:(", 'F'},
	{"0V:)", 'F'},
	{"0V:,", 'F'},
	{"0V:.", 'F'},
	{"0V:1", 'F'},
	{"0V::", 'F'},
	{"0V:;", 'F'},
	{"0V:?", 'F'},
	{"0V:A", 'F'},
	{"0V:B", 'F'},
	{"0V:C", 'F'},
	{"0V:E", 'F'},
	{"0V:F", 'F'},
	{"0V:K", 'F'},
	{"0V:N", 'F'},
	{"0V:O", 'F'},
	{"0V:S", 'F'},
	{"0V:T", 'F'},
	{"0V:U", 'F'},
	{"0V:V", 'F'},
	{"0V:X", 'F'},
	{"0V:\\", 'F'},
	{"0V:{", 'F'},
	{"0V:}", 'F'},
	{"0V;", 'F'},
	{"0V;&", 'F'},
	{"0V;(", 'F'},
	{"0V;)", 'F'},
	{"0V;,", 'F'},
	{"0V;.", 'F'},
	{"0V;1", 'F'},
	{"0V;:", 'F'},
	{"0V;;", 'F'},
	{"0V;?", 'F'},
	{"0V;A", 'F'},
	{"0V;B", 'F'},
	{"0V;C", 'F'},
	{"0V;E", 'F'},
	{"0V;F", 'F'},
	{"0V;K", 'F'},
	{"0V;N", 'F'},
	{"0V;O", 'F'},
	{"0V;S", 'F'},
	{"0V;T", 'F'},
	{"0V;U", 'F'},
	{"0V;V", 'F'},
	{"0V;X", 'F'},
	{"0V;\\", 'F'},
	{"0V;{", 'F'},
	{"0V;}", 'F'},
	{"0V?", 'F'},
	{"0V?&", 'F'},
	{"0V?(", 'F'},
	{"0V?)", 'F'},
	{"0V?,", 'F'},
	{"0V?.", 'F'},
	{"0V?1", 'F'},
	{"0V?:", 'F'},
	{"0V?;", 'F'},
	{"0V??", 'F'},
	{"0V?A", 'F'},
	{"0V?B", 'F'},
	{"0V?C", 'F'},
	{"0V?E", 'F'},
	{"0V?F", 'F'},
	{"0V?K", 'F'},
	{"0V?N", 'F'},
	{"0V?O", 'F'},
	{"0V?S", 'F'},
	{"0V?T", 'F'},
	{"0V?U", 'F'},
	{"0V?V", 'F'},
	{"0V?X", 'F'},
	{"0V?\\", 'F'},
	{"0V?{", 'F'},
	{"0V?}", 'F'},
	{"0VA", 'F'},
	{"0VA&", 'F'},
	{"0VA(", 'F'},
	{"0VA)", 'F'},
	{"0VA,", 'F'},
	{"0VA.", 'F'},
	{"0VA1", 'F'},
	{"0VA:", 'F'},
	{"0VA;", 'F'},
	{"0VA?", 'F'},
	{"0VAA", 'F'},
	{"0VAB", 'F'},
	{"0VAC", 'F'},
	{"0VAE", 'F'},
	{"0VAF", 'F'},
	{"0VAK", 'F'},
	{"0VAN", 'F'},
	{"0VAO", 'F'},
	{"0VAS", 'F'},
	{"0VAT", 'F'},
	{"0VAU", 'F'},
	{"0VAV", 'F'},
	{"0VAX", 'F'},
	{"0VA\\", 'F'},
	{"0VA{", 'F'},
	{"0VA}", 'F'},
	{"0VB", 'F'},
	{"0VB&", 'F'},
	{"0VB(", 'F'},
	{"0VB)", 'F'},
	{"0VB,", 'F'},
	{"0VB.", 'F'},
	{"0VB1", 'F'},
	{"0VB:", 'F'},
	{"0VB;", 'F'},
	{"0VB?", 'F'},
	{"0VBA", 'F'},
	{"0VBB", 'F'},
	{"0VBC", 'F'},
	{"0VBE", 'F'},
	{"0VBF", 'F'},
	{"0VBK", 'F'},
	{"0VBN", 'F'},
	{"0VBO", 'F'},
	{"0VBS", 'F'},
	{"0VBT", 'F'},
	{"0VBU", 'F'},
	{"0VBV", 'F'},
	{"0VBX", 'F'},
	{"0VB\\", 'F'},
	{"0VB{", 'F'},
	{"0VB}", 'F'},
	{"0VC", 'F'},
	{"0VC&", 'F'},
	{"0VC(", 'F'},
	{"0VC)", 'F'},
	{"0VC,", 'F'},
	{"0VC.", 'F'},
	{"0VC1", 'F'},
	{"0VC:", 'F'},
	{"0VC;", 'F'},
	{"0VC?", 'F'},
	{"0VCA", 'F'},
	{"0VCB", 'F'},
	{"0VCC", 'F'},
	{"0VCE", 'F'},
	{"0VCF", 'F'},
	{"0VCK", 'F'},
	{"0VCN", 'F'},
	{"0VCO", 'F'},
	{"0VCS", 'F'},
	{"0VCT", 'F'},
	{"0VCU", 'F'},
	{"0VCV", 'F'},
	{"0VCX", 'F'},
	{"0VC\\", 'F'},
	{"0VC{", 'F'},
	{"0VC}", 'F'},
	{"0VE", 'F'},
	{"0VE&", 'F'},
	{"0VE(", 'F'},
	{"0VE)", 'F'},
	{"0VE,", 'F'},
	{"0VE.", 'F'},
	{"0VE1", 'F'},
	{"0VE:", 'F'},
	{"0VE;", 'F'},
	{"0VE?", 'F'},
	{"0VEA", 'F'},
	{"0VEB", 'F'},
	{"0VEC", 'F'},
	{"0VEE", 'F'},
	{"0VEF", 'F'},
	{"0VEK", 'F'},
	{"0VEN", 'F'},
	{"0VEO", 'F'},
	{"0VES", 'F'},
	{"0VET", 'F'},
	{"0VEU", 'F'},
	{"0VEV", 'F'},
	{"0VEX", 'F'},
	{"0VE\\", 'F'},
	{"0VE{", 'F'},
	{"0VE}", 'F'},
	{"0VF", 'F'},
	{"0VF&", 'F'},
	{"0VF(", 'F'},
	{"0VF)", 'F'},
	{"0VF,", 'F'},
	{"0VF.", 'F'},
	{"0VF1", 'F'},
	{"0VF:", 'F'},
	{"0VF;", 'F'},
	{"0VF?", 'F'},
	{"0VFA", 'F'},
	{"0VFB", 'F'},
	{"0VFC", 'F'},
	{"0VFE", 'F'},
	{"0VFF", 'F'},
	{"0VFK", 'F'},
	{"0VFN", 'F'},
	{"0VFO", 'F'},
	{"0VFS", 'F'},
	{"0VFT", 'F'},
	{"0VFU", 'F'},
	{"0VFV", 'F'},
	{"0VFX", 'F'},
	{"0VF\\", 'F'},
	{"0VF{", 'F'},
	{"0VF}", 'F'},
	{"0VK", 'F'},
	{"0VK&", 'F'},
	{"0VK(", 'F'},
	{"0VK)", 'F'},
	{"0VK,", 'F'},
	{"0VK.", 'F'},
	{"0VK1", 'F'},
	{"0VK:", 'F'},
	{"0VK;", 'F'},
	{"0VK?", 'F'},
	{"0VKA", 'F'},
	{"0VKB", 'F'},
	{"0VKC", 'F'},
	{"0VKE", 'F'},
	{"0VKF", 'F'},
	{"0VKK", 'F'},
	{"0VKN", 'F'},
	{"0VKO", 'F'},
	{"0VKS", 'F'},
	{"0VKT", 'F'},
	{"0VKU", 'F'},
	{"0VKV", 'F'},
	{"0VKX", 'F'},
	{"0VK\\", 'F'},
	{"0VK{", 'F'},
	{"0VK}", 'F'},
	{"0VN", 'F'},
	{"0VN&", 'F'},
	{"0VN(", 'F'},
	{"0VN)", 'F'},
	{"0VN,", 'F'},
	{"0VN.", 'F'},
	{"0VN1", 'F'},
	{"0VN:", 'F'},
	{"0VN;", 'F'},
	{"0VN?", 'F'},
	{"0VNA", 'F'},
	{"0VNB", 'F'},
	{"0VNC", 'F'},
	{"0VNE", 'F'},
	{"0VNF", 'F'},
	{"0VNK", 'F'},
	{"0VNN", 'F'},
	{"0VNO", 'F'},
	{"0VNS", 'F'},
	{"0VNT", 'F'},
	{"0VNU", 'F'},
	{"0VNV", 'F'},
	{"0VNX", 'F'},
	{"0VN\\", 'F'},
	{"0VN{", 'F'},
	{"0VN}", 'F'},
	{"0VO", 'F'},
	{"0VO&", 'F'},
	{"0VO(", 'F'},
	{"0VO)", 'F'},
	{"0VO,", 'F'},
	{"0VO.", 'F'},
	{"0VO1", 'F'},
	{"0VO:", 'F'},
	{"0VO;", 'F'},
	{"0VO?", 'F'},
	{"0VOA", 'F'},
	{"0VOB", 'F'},
	{"0VOC", 'F'},
	{"0VOE", 'F'},
	{"0VOF", 'F'},
	{"0VOK", 'F'},
	{"0VON", 'F'},
	{"0VOO", 'F'},
	{"0VOS", 'F'},
	{"0VOT", 'F'},
	{"0VOU", 'F'},
	{"0VOV", 'F'},
	{"0VOX", 'F'},
	{"0VO\\", 'F'},
	{"0VO{", 'F'},
	{"0VO}", 'F'},
	{"0VS", 'F'},
	{"0VS&", 'F'},
	{"0VS(", 'F'},
	{"0VS)", 'F'},
	{"0VS,", 'F'},
	{"0VS.", 'F'},
	{"0VS1", 'F'},
	{"0VS:", 'F'},
	{"0VS;", 'F'},
	{"0VS?", 'F'},
	{"0VSA", 'F'},
	{"0VSB", 'F'},
	{"0VSC", 'F'},
	{"0VSE", 'F'},
	{"0VSF", 'F'},
	{"0VSK", 'F'},
	{"0VSN", 'F'},
	{"0VSO", 'F'},
	{"0VSS", 'F'},
	{"0VST", 'F'},
	{"0VSU", 'F'},
	{"0VSV", 'F'},
	{"0VSX", 'F'},
	{"0VS\\", 'F'},
	{"0VS{", 'F'},
	{"0VS}", 'F'},
	{"0VT", 'F'},
	{"0VT&", 'F'},
	{"0VT(", 'F'},
	{"0VT)", 'F'},
	{"0VT,", 'F'},
	{"0VT.", 'F'},
	{"0VT1", 'F'},
	{"0VT:", 'F'},
	{"0VT;", 'F'},
	{"0VT?", 'F'},
	{"0VTA", 'F'},
	{"0VTB", 'F'},
	{"0VTC", 'F'},
	{"0VTE", 'F'},
	{"0VTF", 'F'},
	{"0VTK", 'F'},
	{"0VTN", 'F'},
	{"0VTO", 'F'},
	{"0VTS", 'F'},
	{"0VTT", 'F'},
	{"0VTU", 'F'},
	{"0VTV", 'F'},
	{"0VTX", 'F'},
	{"0VT\\", 'F'},
	{"0VT{", 'F'},
	{"0VT}", 'F'},
	{"0VU", 'F'},
	{"0VU&", 'F'},
	{"0VU(", 'F'},
	{"0VU)", 'F'},
	{"0VU,", 'F'},
	{"0VU.", 'F'},
	{"0VU1", 'F'},
	{"0VU:", 'F'},
	{"0VU;", 'F'},
	{"0VU?", 'F'},
	{"0VUA", 'F'},
	{"0VUB", 'F'},
	{"0VUC", 'F'},
	{"0VUE", 'F'},
	{"0VUF", 'F'},
	{"0VUK", 'F'},
	{"0VUN", 'F'},
	{"0VUO", 'F'},
	{"0VUS", 'F'},
	{"0VUT", 'F'},
	{"0VUU", 'F'},
	{"0VUV", 'F'},
	{"0VUX", 'F'},
	{"0VU\\", 'F'},
	{"0VU{", 'F'},
	{"0VU}", 'F'},
	{"0VV", 'F'},
	{"0VV&", 'F'},
	{"0VV(", 'F'},
	{"0VV)", 'F'},
	{"0VV,", 'F'},
	{"0VV.", 'F'},
	{"0VV1", 'F'},
	{"0VV:", 'F'},
	{"0VV;", 'F'},
	{"0VV?", 'F'},
	{"0VVA", 'F'},
	{"0VVB", 'F'},
	{"0VVC", 'F'},
	{"0VVE", 'F'},
	{"0VVF", 'F'},
	{"0VVK", 'F'},
	{"0VVN", 'F'},
	{"0VVO", 'F'},
	{"0VVS", 'F'},
	{"0VVT", 'F'},
	{"0VVU", 'F'},
	{"0VVV", 'F'},
	{"0VVX", 'F'},
	{"0VV\\", 'F'},
	{"0VV{", 'F'},
	{"0VV}", 'F'},
	{"0VX", 'F'},
	{"0VX&", 'F'},
	{"0VX(", 'F'},
	{"0VX)", 'F'},
	{"0VX,", 'F'},
	{"0VX.", 'F'},
	{"0VX1", 'F'},
	{"0VX:", 'F'},
	{"0VX;", 'F'},
	{"0VX?", 'F'},
	{"0VXA", 'F'},
	{"0VXB", 'F'},
	{"0VXC", 'F'},
	{"0VXE", 'F'},
	{"0VXF", 'F'},
	{"0VXK", 'F'},
	{"0VXN", 'F'},
	{"0VXO", 'F'},
	{"0VXS", 'F'},
	{"0VXT", 'F'},
	{"0VXU", 'F'},
	{"0VXV", 'F'},
	{"0VXX", 'F'},
	{"0VX\\", 'F'},
	{"0VX{", 'F'},
	{"0VX}", 'F'},
	{"0V\\", 'F'},
	{"0V\\&", 'F'},
	{"0V\\(", 'F'},
	{"0V\\)", 'F'},
	{"0V\\,", 'F'},
	{"0V\\.", 'F'},
	{"0V\\1", 'F'},
	{"0V\\:", 'F'},
	{"0V\\;", 'F'},
	{"0V\\?", 'F'},
	{"0V\\A", 'F'},
	{"0V\\B", 'F'},
	{"0V\\C", 'F'},
	{"0V\\E", 'F'},
	{"0V\\F", 'F'},
	{"0V\\K", 'F'},
	{"0V\\N", 'F'},
	{"0V\\O", 'F'},
	{"0V\\S", 'F'},
	{"0V\\T", 'F'},
	{"0V\\U", 'F'},
	{"0V\\V", 'F'},
	{"0V\\X", 'F'},
	{"0V\\\\", 'F'},
	{"0V\\{", 'F'},
	{"0V\\}", 'F'},
	{"0V{", 'F'},
	{"0V{&", 'F'},
	{"0V{(", 'F'},
	{"0V{)", 'F'},
	{"0V{,", 'F'},
	{"0V{.", 'F'},
	{"0V{1", 'F'},
	{"0V{:", 'F'},
	{"0V{;", 'F'},
	{"0V{?", 'F'},
	{"0V{A", 'F'},
	{"0V{B", 'F'},
	{"0V{C", 'F'},
	{"0V{E", 'F'},
	{"0V{F", 'F'},
	{"0V{K", 'F'},
	{"0V{N", 'F'},
	{"0V{O", 'F'},
	{"0V{S", 'F'},
	{"0V{T", 'F'},
	{"0V{U", 'F'},
	{"0V{V", 'F'},
	{"0V{X", 'F'},
	{"0V{\\", 'F'},
	{"0V{{", 'F'},
	{"0V{}", 'F'},
	{"0V}", 'F'},
	{"0V}&", 'F'},
	{"0V}(", 'F'},
	{"0V})", 'F'},
	{"0V},", 'F'},
	{"0V}.", 'F'},
	{"0V}1", 'F'},
	{"0V}:", 'F'},
	{"0V};", 'F'},
	{"0V}?", 'F'},
	{"0V}A", 'F'},
	{"0V}B", 'F'},
	{"0V}C", 'F'},
	{"0V}E", 'F'},
	{"0V}F", 'F'},
	{"0V}K", 'F'},
	{"0V}N", 'F'},
	{"0V}O", 'F'},
	{"0V}S", 'F'},
	{"0V}T", 'F'},
	{"0V}U", 'F'},
	{"0V}V", 'F'},
	{"0V}X", 'F'},
	{"0V}\\", 'F'},
	{"0V}{", 'F'},
	{"0V}}", 'F'},
	{"0X", 'F'},
	{"0X&", 'F'},
	{"0X(", 'F'},
	{"0X)", 'F'},
	{"0X,", 'F'},
	{"0X.", 'F'},
	{"0X1", 'F'},
	{"0X:", 'F'},
	{"0X;", 'F'},
	{"0X?", 'F'},
	{"0XA", 'F'},
	{"0XB", 'F'},
	{"0XC", 'F'},
	{"0XE", 'F'},
	{"0XF", 'F'},
	{"0XK", 'F'},
	{"0XN", 'F'},
	{"0XO", 'F'},
	{"0XS", 'F'},
	{"0XT", 'F'},
	{"0XU", 'F'},
	{"0XV", 'F'},
	{"0XX", 'F'},
	{"0X\\", 'F'},
	{"0X{", 'F'},
	{"0X}", 'F'},
	{"0\\&", 'F'},
	{"0\\(", 'F'},
	{"0\\)", 'F'},
	{"0\\,", 'F'},
	{"0\\.", 'F'},
	{"0\\1", 'F'},
	{"0\\:", 'F'},
	{"0\\;", 'F'},
	{"0\\?", 'F'},
	{"0\\A", 'F'},
	{"0\\B", 'F'},
	{"0\\C", 'F'},
	{"0\\E", 'F'},
	{"0\\F", 'F'},
	{"0\\K", 'F'},
	{"0\\N", 'F'},
	{"0\\O", 'F'},
	{"0\\S", 'F'},
	{"0\\T", 'F'},
	{"0\\U", 'F'},
	{"0\\V", 'F'},
	{"0\\X", 'F'},
	{"0\\\\", 'F'},
	{"0\\{", 'F'},
	{"0\\}", 'F'},
	{"0{&", 'F'},
	{"0{(", 'F'},
	{"0{)", 'F'},
	{"0{,", 'F'},
	{"0{.", 'F'},
	{"0{1", 'F'},
	{"0{:", 'F'},
	{"0{;", 'F'},
	{"0{?", 'F'},
	{"0{A", 'F'},
	{"0{B", 'F'},
	{"0{C", 'F'},
	{"0{E", 'F'},
	{"0{F", 'F'},
	{"0{K", 'F'},
	{"0{N", 'F'},
	{"0{O", 'F'},
	{"0{S", 'F'},
	{"0{T", 'F'},
	{"0{U", 'F'},
	{"0{V", 'F'},
	{"0{X", 'F'},
	{"0{\\", 'F'},
	{"0{{", 'F'},
	{"0{}", 'F'},
	{"0}&", 'F'},
	{"0}(", 'F'},
	{"0})", 'F'},
	{"0},", 'F'},
	{"0}.", 'F'},
	{"0}1", 'F'},
	{"0}:", 'F'},
	{"0};", 'F'},
	{"0}?", 'F'},
	{"0}A", 'F'},
	{"0}B", 'F'},
	{"0}C", 'F'},
	{"0}E", 'F'},
	{"0}F", 'F'},
	{"0}K", 'F'},
	{"0}N", 'F'},
	{"0}O", 'F'},
	{"0}S", 'F'},
	{"0}T", 'F'},
	{"0}U", 'F'},
	{"0}V", 'F'},
	{"0}X", 'F'},
	{"0}\\", 'F'},
	{"0}{", 'F'},
	{"0}}", 'F'},
	{"ABORT", 'k'},
	{"ABS", 'f'},
	{"ABSENT", 'k'},
	{"ABSOLUTE", 'k'},
	{"ACCESS", 'k'},
	{"ACTION", 'k'},
	{"ADD", 'k'},
	{"ADMIN", 'k'},
	{"AFTER", 'k'},
	{"AGGREGATE", 'k'},
	{"ALL", 'E'},
	{"ALSO", 'k'},
	{"ALTER", 'k'},
	{"ALWAYS", 'k'},
	{"ANALYSE", 'k'},
	{"ANALYZE", 'k'},
	{"AND", '&'},
	{"ANY", 'E'},
	{"ARRAY", 'k'},
	{"AS", 'E'},
	{"ASC", 'k'},
	{"ASENSITIVE", 'k'},
	{"ASSERTION", 'k'},
	{"ASSIGNMENT", 'k'},
	{"ASYMMETRIC", 'k'},
	{"AT", 'k'},
	{"ATOMIC", 'k'},
	{"ATTACH", 'k'},
	{"ATTRIBUTE", 'k'},
	{"AUTHORIZATION", 'k'},
	{"AVG", 'f'},
	{"BACKUP", 'T'},
	{"BACKWARD", 'k'},
	{"BEFORE", 'k'},
	{"BEGIN", 'k'},
	{"BETWEEN", 'E'},
	{"BIGINT", 't'},
	{"BIGSERIAL", 't'},
	{"BINARY", 't'},
	{"BIT", 't'},
	{"BOOL", 't'},
	{"BOOLEAN", 't'},
	{"BOTH", 'k'},
	{"BOX", 't'},
	{"BREADTH", 'k'},
	{"BREAK", 'T'},
	{"BROWSE", 'T'},
	{"BULK", 'T'},
	{"BY", 'E'},
	{"BYTEA", 't'},
	{"CACHE", 'k'},
	{"CALL", 'k'},
	{"CALLED", 'k'},
	{"CASCADE", 'k'},
	{"CASCADED", 'k'},
	{"CASE", 'E'},
	{"CAST", 'f'},
	{"CATALOG", 'k'},
	{"CEIL", 'f'},
	{"CEILING", 'f'},
	{"CHAIN", 'k'},
	{"CHAR", 't'},
	{"CHARACTER", 't'},
	{"CHARACTERISTICS", 'k'},
	{"CHAR_LENGTH", 'f'},
	{"CHECK", 'k'},
	{"CHECKPOINT", 'k'},
	{"CIDR", 't'},
	{"CIRCLE", 't'},
	{"CLASS", 'k'},
	{"CLOSE", 'k'},
	{"CLUSTER", 'k'},
	{"CLUSTERED", 'T'},
	{"COALESCE", 'f'},
	{"COLLATE", 'A'},
	{"COLLATION", 'k'},
	{"COLUMN", 'k'},
	{"COLUMNS", 'k'},
	{"COMMENT", 'k'},
	{"COMMENTS", 'k'},
	{"COMMIT", 'k'},
	{"COMMITTED", 'k'},
	{"COMPRESSION", 'k'},
	{"COMPUTE", 'T'},
	{"CONCAT", 'f'},
	{"CONCURRENTLY", 'k'},
	{"CONDITIONAL", 'k'},
	{"CONFIGURATION", 'k'},
	{"CONFLICT", 'k'},
	{"CONNECTION", 'k'},
	{"CONSTRAINT", 'k'},
	{"CONSTRAINTS", 'k'},
	{"CONTAINS", 'T'},
	{"CONTAINSTABLE", 'T'},
	{"CONTENT", 'k'},
	{"CONTINUE", 'k'},
	{"CONVERSION", 'k'},
	{"CONVERT", 'f'},
	{"COPY", 'k'},
	{"COST", 'k'},
	{"COUNT", 'f'},
	{"CREATE", 'k'},
	{"CROSS", 'E'},
	{"CROSS JOIN", 'k'},
	{"CSV", 'k'},
	{"CUBE", 'k'},
	{"CURRENT", 'k'},
	{"CURRENT_CATALOG", 'f'},
	{"CURRENT_DATE", 'f'},
	{"CURRENT_ROLE", 'k'},
	{"CURRENT_SCHEMA", 'f'},
	{"CURRENT_TIME", 'f'},
	{"CURRENT_TIMESTAMP", 'f'},
	{"CURRENT_USER", 'f'},
	{"CURSOR", 'k'},
	{"CYCLE", 'k'},
	{"DATA", 'k'},
	{"DATABASE", 'f'},
	{"DATE", 't'},
	{"DATETIME", 't'},
	{"DATETIME2", 't'},
	{"DATETIMEOFFSET", 't'},
	{"DAY", 'k'},
	{"DBCC", 'T'},
	{"DEALLOCATE", 'k'},
	{"DEC", 'k'},
	{"DECIMAL", 't'},
	{"DECLARE", 'k'},
	{"DEFAULT", 'k'},
	{"DEFAULTS", 'k'},
	{"DEFERRABLE", 'k'},
	{"DEFERRED", 'k'},
	{"DEFINER", 'k'},
	{"DELETE", 'k'},
	{"DELIMITER", 'k'},
	{"DELIMITERS", 'k'},
	{"DENY", 'T'},
	{"DEPENDS", 'k'},
	{"DEPTH", 'k'},
	{"DESC", 'k'},
	{"DETACH", 'k'},
	{"DICTIONARY", 'k'},
	{"DISABLE", 'k'},
	{"DISCARD", 'k'},
	{"DISK", 'T'},
	{"DISTINCT", 'E'},
	{"DISTRIBUTED", 'T'},
	{"DO", 'k'},
	{"DOCUMENT", 'k'},
	{"DOMAIN", 'k'},
	{"DOUBLE", 't'},
	{"DROP", 'k'},
	{"DUMP", 'T'},
	{"EACH", 'k'},
	{"ELSE", 'E'},
	{"EMPTY", 'k'},
	{"ENABLE", 'k'},
	{"ENCODING", 'k'},
	{"ENCRYPTED", 'k'},
	{"END", 'E'},
	{"ENFORCED", 'k'},
	{"ENUM", 'k'},
	{"ERRLVL", 'T'},
	{"ERROR", 'k'},
	{"ESCAPE", 'k'},
	{"EVENT", 'k'},
	{"EXCEPT", 'k'},
	{"EXCLUDE", 'k'},
	{"EXCLUDING", 'k'},
	{"EXCLUSIVE", 'k'},
	{"EXEC", 'T'},
	{"EXECUTE", 'k'},
	{"EXISTS", 'E'},
	{"EXIT", 'T'},
	{"EXPLAIN", 'k'},
	{"EXPRESSION", 'k'},
	{"EXTENSION", 'k'},
	{"EXTERNAL", 'k'},
	{"EXTRACT", 'f'},
	{"FALSE", 'k'},
	{"FAMILY", 'k'},
	{"FETCH", 'k'},
	{"FILE", 'T'},
	{"FILLFACTOR", 'T'},
	{"FILTER", 'k'},
	{"FINALIZE", 'k'},
	{"FIRST", 'k'},
	{"FLOAT", 't'},
	{"FLOOR", 'f'},
	{"FOLLOWING", 'k'},
	{"FOR", 'k'},
	{"FORCE", 'k'},
	{"FOREIGN", 'k'},
	{"FORMAT", 'k'},
	{"FORWARD", 'k'},
	{"FREETEXT", 'T'},
	{"FREETEXTTABLE", 'T'},
	{"FREEZE", 'k'},
	{"FROM", 'E'},
	{"FULL", 'E'},
	{"FULL JOIN", 'k'},
	{"FULL OUTER JOIN", 'k'},
	{"FUNCTION", 'k'},
	{"FUNCTIONS", 'k'},
	{"GENERATED", 'k'},
	{"GEOGRAPHY", 't'},
	{"GEOMETRY", 't'},
	{"GETDATE", 'f'},
	{"GLOBAL", 'k'},
	{"GOTO", 'T'},
	{"GRANT", 'k'},
	{"GRANTED", 'k'},
	{"GREATEST", 'f'},
	{"GROUP", 'E'},
	{"GROUP BY", 'B'},
	{"GROUPING", 'k'},
	{"GROUPS", 'k'},
	{"HANDLER", 'k'},
	{"HAVING", 'E'},
	{"HEADER", 'k'},
	{"HIERARCHYID", 't'},
	{"HOLD", 'k'},
	{"HOLDLOCK", 'T'},
	{"HOUR", 'k'},
	{"IDENTITY", 'k'},
	{"IDENTITYCOL", 'T'},
	{"IDENTITY_INSERT", 'T'},
	{"IF", 'k'},
	{"ILIKE", 'k'},
	{"IMAGE", 't'},
	{"IMMEDIATE", 'k'},
	{"IMMUTABLE", 'k'},
	{"IMPLICIT", 'k'},
	{"IMPORT", 'k'},
	{"IN", 'E'},
	{"INCLUDE", 'k'},
	{"INCLUDING", 'k'},
	{"INCREMENT", 'k'},
	{"INDENT", 'k'},
	{"INDEX", 'k'},
	{"INDEXES", 'k'},
	{"INET", 't'},
	{"INHERIT", 'k'},
	{"INHERITS", 'k'},
	{"INITIALLY", 'k'},
	{"INLINE", 'k'},
	{"INNER", 'E'},
	{"INNER JOIN", 'k'},
	{"INOUT", 'k'},
	{"INPUT", 'k'},
	{"INSENSITIVE", 'k'},
	{"INSERT", 'k'},
	{"INSTEAD", 'k'},
	{"INT", 't'},
	{"INTEGER", 't'},
	{"INTERSECT", 'k'},
	{"INTERVAL", 't'},
	{"INTO", 'E'},
	{"INVOKER", 'k'},
	{"IS", 'E'},
	{"IS NOT", 'o'},
	{"IS NOT NULL", 'E'},
	{"IS NULL", 'E'},
	{"ISNULL", 'f'},
	{"ISOLATION", 'k'},
	{"JOIN", 'E'},
	{"JSON", 't'},
	{"JSONB", 't'},
	{"JSON_ARRAY", 'k'},
	{"JSON_ARRAYAGG", 'k'},
	{"JSON_EXISTS", 'k'},
	{"JSON_OBJECT", 'k'},
	{"JSON_OBJECTAGG", 'k'},
	{"JSON_QUERY", 'k'},
	{"JSON_SCALAR", 'k'},
	{"JSON_SERIALIZE", 'k'},
	{"JSON_TABLE", 'k'},
	{"JSON_VALUE", 'k'},
	{"KEEP", 'k'},
	{"KEY", 'k'},
	{"KEYS", 'k'},
	{"KILL", 'T'},
	{"LABEL", 'k'},
	{"LANGUAGE", 'k'},
	{"LARGE", 'k'},
	{"LAST", 'k'},
	{"LATERAL", 'k'},
	{"LEADING", 'k'},
	{"LEAKPROOF", 'k'},
	{"LEAST", 'f'},
	{"LEFT", 'E'},
	{"LEFT JOIN", 'k'},
	{"LEFT OUTER JOIN", 'k'},
	{"LEN", 'f'},
	{"LENGTH", 'f'},
	{"LEVEL", 'k'},
	{"LIKE", 'E'},
	{"LIMIT", 'E'},
	{"LINE", 't'},
	{"LINENO", 'T'},
	{"LISTEN", 'k'},
	{"LOAD", 'k'},
	{"LOCAL", 'k'},
	{"LOCALTIME", 'f'},
	{"LOCALTIMESTAMP", 'f'},
	{"LOCATION", 'k'},
	{"LOCK", 'k'},
	{"LOCKED", 'k'},
	{"LOGGED", 'k'},
	{"LOWER", 'f'},
	{"LSEG", 't'},
	{"MACADDR", 't'},
	{"MAPPING", 'k'},
	{"MATCH", 'k'},
	{"MATCHED", 'k'},
	{"MATERIALIZED", 'k'},
	{"MAX", 'f'},
	{"MAXVALUE", 'k'},
	{"MERGE", 'k'},
	{"MERGE_ACTION", 'k'},
	{"METHOD", 'k'},
	{"MIN", 'f'},
	{"MINUTE", 'k'},
	{"MINVALUE", 'k'},
	{"MODE", 'k'},
	{"MONEY", 't'},
	{"MONTH", 'k'},
	{"MOVE", 'k'},
	{"NAME", 't'},
	{"NAMES", 'k'},
	{"NATIONAL", 'k'},
	{"NATURAL", 'k'},
	{"NCHAR", 't'},
	{"NESTED", 'k'},
	{"NEW", 'k'},
	{"NEWID", 'f'},
	{"NEXT", 'k'},
	{"NFC", 'k'},
	{"NFD", 'k'},
	{"NFKC", 'k'},
	{"NFKD", 'k'},
	{"NO", 'k'},
	{"NOCHECK", 'T'},
	{"NONCLUSTERED", 'T'},
	{"NONE", 'k'},
	{"NORMALIZE", 'k'},
	{"NORMALIZED", 'k'},
	{"NOT", 'E'},
	{"NOT BETWEEN", 'o'},
	{"NOT IN", 'o'},
	{"NOT LIKE", 'o'},
	{"NOTHING", 'k'},
	{"NOTIFY", 'k'},
	{"NOTNULL", 'k'},
	{"NOWAIT", 'k'},
	{"NTEXT", 't'},
	{"NULL", 'E'},
	{"NULLIF", 'f'},
	{"NULLS", 'k'},
	{"NUMERIC", 't'},
	{"NVARCHAR", 't'},
	{"OBJECT", 'k'},
	{"OBJECTS", 'k'},
	{"OF", 'k'},
	{"OFF", 'k'},
	{"OFFSET", 'E'},
	{"OFFSETS", 'T'},
	{"OID", 't'},
	{"OIDS", 'k'},
	{"OLD", 'k'},
	{"OMIT", 'k'},
	{"ON", 'E'},
	{"ONLY", 'k'},
	{"OPEN", 'T'},
	{"OPENDATASOURCE", 'T'},
	{"OPENQUERY", 'T'},
	{"OPENROWSET", 'T'},
	{"OPENXML", 'T'},
	{"OPERATOR", 'k'},
	{"OPTION", 'k'},
	{"OPTIONS", 'k'},
	{"OR", '&'},
	{"ORDER", 'E'},
	{"ORDER BY", 'B'},
	{"ORDINALITY", 'k'},
	{"OTHERS", 'k'},
	{"OUT", 'k'},
	{"OUTER", 'E'},
	{"OUTER JOIN", 'k'},
	{"OVER", 'E'},
	{"OVERLAPS", 'k'},
	{"OVERLAY", 'f'},
	{"OVERRIDING", 'k'},
	{"OWNED", 'k'},
	{"OWNER", 'k'},
	{"PARALLEL", 'k'},
	{"PARAMETER", 'k'},
	{"PARSER", 'k'},
	{"PARTIAL", 'k'},
	{"PARTITION", 'E'},
	{"PARTITION BY", 'B'},
	{"PASSING", 'k'},
	{"PASSWORD", 'f'},
	{"PATH", 't'},
	{"PERCENT", 'T'},
	{"PERIOD", 'k'},
	{"PIVOT", 'T'},
	{"PLACING", 'k'},
	{"PLAN", 'k'},
	{"PLANS", 'k'},
	{"POINT", 't'},
	{"POLICY", 'k'},
	{"POLYGON", 't'},
	{"POSITION", 'f'},
	{"PRECEDING", 'k'},
	{"PRECISION", 'k'},
	{"PREPARE", 'k'},
	{"PREPARED", 'k'},
	{"PRESERVE", 'k'},
	{"PRIMARY", 'k'},
	{"PRINT", 'T'},
	{"PRIOR", 'k'},
	{"PRIVILEGES", 'k'},
	{"PROC", 'T'},
	{"PROCEDURAL", 'k'},
	{"PROCEDURE", 'k'},
	{"PROCEDURES", 'k'},
	{"PROGRAM", 'k'},
	{"PUBLIC", 'T'},
	{"PUBLICATION", 'k'},
	{"QUOTE", 'k'},
	{"QUOTES", 'k'},
	{"RAISERROR", 'T'},
	{"RANGE", 'k'},
	{"READ", 'k'},
	{"READTEXT", 'T'},
	{"REAL", 't'},
	{"REASSIGN", 'k'},
	{"RECONFIGURE", 'T'},
	{"RECURSIVE", 'k'},
	{"REF", 'k'},
	{"REFERENCES", 'k'},
	{"REFERENCING", 'k'},
	{"REFRESH", 'k'},
	{"REINDEX", 'k'},
	{"RELATIVE", 'k'},
	{"RELEASE", 'k'},
	{"RENAME", 'k'},
	{"REPEATABLE", 'k'},
	{"REPLACE", 'f'},
	{"REPLICA", 'k'},
	{"REPLICATION", 'T'},
	{"RESET", 'k'},
	{"RESTART", 'k'},
	{"RESTORE", 'T'},
	{"RESTRICT", 'k'},
	{"RETURN", 'k'},
	{"RETURNING", 'E'},
	{"RETURNS", 'k'},
	{"REVERT", 'T'},
	{"REVOKE", 'k'},
	{"RIGHT", 'E'},
	{"RIGHT JOIN", 'k'},
	{"RIGHT OUTER JOIN", 'k'},
	{"ROLE", 'k'},
	{"ROLLBACK", 'k'},
	{"ROLLUP", 'k'},
	{"ROUND", 'f'},
	{"ROUTINE", 'k'},
	{"ROUTINES", 'k'},
	{"ROW", 'k'},
	{"ROWCOUNT", 'T'},
	{"ROWGUIDCOL", 'T'},
	{"ROWS", 'k'},
	{"ROWVERSION", 't'},
	{"RULE", 'k'},
	{"SAVE", 'T'},
	{"SAVEPOINT", 'k'},
	{"SCALAR", 'k'},
	{"SCHEMA", 'k'},
	{"SCHEMAS", 'k'},
	{"SCROLL", 'k'},
	{"SEARCH", 'k'},
	{"SECOND", 'k'},
	{"SECURITY", 'k'},
	{"SECURITYAUDIT", 'T'},
	{"SELECT", 'E'},
	{"SEMANTICKEYPHRASETABLE", 'T'},
	{"SEMANTICSIMILARITYDETAILSTABLE", 'T'},
	{"SEMANTICSIMILARITYTABLE", 'T'},
	{"SEQUENCE", 'k'},
	{"SEQUENCES", 'k'},
	{"SERIAL", 't'},
	{"SERIALIZABLE", 'k'},
	{"SERVER", 'k'},
	{"SESSION", 'k'},
	{"SESSION_USER", 'f'},
	{"SET", 'E'},
	{"SETOF", 'k'},
	{"SETS", 'k'},
	{"SETUSER", 'T'},
	{"SHARE", 'k'},
	{"SHOW", 'k'},
	{"SHUTDOWN", 'T'},
	{"SIMILAR", 'k'},
	{"SIMPLE", 'k'},
	{"SKIP", 'k'},
	{"SMALLDATETIME", 't'},
	{"SMALLINT", 't'},
	{"SMALLSERIAL", 't'},
	{"SNAPSHOT", 'k'},
	{"SOME", 'E'},
	{"SOURCE", 'k'},
	{"SQL", 'k'},
	{"SQL_VARIANT", 't'},
	{"STABLE", 'k'},
	{"STANDALONE", 'k'},
	{"START", 'k'},
	{"STATEMENT", 'k'},
	{"STATISTICS", 'k'},
	{"STDIN", 'k'},
	{"STDOUT", 'k'},
	{"STORAGE", 'k'},
	{"STORED", 'k'},
	{"STRICT", 'k'},
	{"STRING", 'k'},
	{"STRIP", 'k'},
	{"SUBSCRIPTION", 'k'},
	{"SUBSTR", 'f'},
	{"SUBSTRING", 'f'},
	{"SUM", 'f'},
	{"SUPPORT", 'k'},
	{"SYMMETRIC", 'k'},
	{"SYSID", 'k'},
	{"SYSTEM", 'k'},
	{"SYSTEM_USER", 'f'},
	{"TABLE", 'k'},
	{"TABLES", 'k'},
	{"TABLESAMPLE", 'k'},
	{"TABLESPACE", 'k'},
	{"TARGET", 'k'},
	{"TEMP", 'k'},
	{"TEMPLATE", 'k'},
	{"TEMPORARY", 'k'},
	{"TEXT", 't'},
	{"TEXTSIZE", 'T'},
	{"THEN", 'E'},
	{"TIES", 'k'},
	{"TIME", 't'},
	{"TIMESTAMP", 't'},
	{"TIMESTAMPTZ", 't'},
	{"TINYINT", 't'},
	{"TO", 'k'},
	{"TOP", 'T'},
	{"TRAILING", 'k'},
	{"TRAN", 'T'},
	{"TRANSACTION", 'k'},
	{"TRANSFORM", 'k'},
	{"TREAT", 'k'},
	{"TRIGGER", 'k'},
	{"TRIM", 'f'},
	{"TRUE", 'k'},
	{"TRUNCATE", 'k'},
	{"TRUSTED", 'k'},
	{"TRY_CONVERT", 'T'},
	{"TSEQUAL", 'T'},
	{"TSQUERY", 't'},
	{"TSVECTOR", 't'},
	{"TYPE", 'k'},
	{"TYPES", 'k'},
	{"UESCAPE", 'k'},
	{"UNBOUNDED", 'k'},
	{"UNCOMMITTED", 'k'},
	{"UNCONDITIONAL", 'k'},
	{"UNENCRYPTED", 'k'},
	{"UNION", 'U'},
	{"UNION ALL", 'U'},
	{"UNIQUE", 'k'},
	{"UNIQUEIDENTIFIER", 't'},
	{"UNKNOWN", 'k'},
	{"UNLISTEN", 'k'},
	{"UNLOGGED", 'k'},
	{"UNPIVOT", 'T'},
	{"UNTIL", 'k'},
	{"UPDATE", 'k'},
	{"UPDATETEXT", 'T'},
	{"UPPER", 'f'},
	{"USE", 'T'},
	{"USER", 'f'},
	{"USER_ID", 'f'},
	{"USER_NAME", 'f'},
	{"USING", 'E'},
	{"UUID", 't'},
	{"VACUUM", 'k'},
	{"VALID", 'k'},
	{"VALIDATE", 'k'},
	{"VALIDATOR", 'k'},
	{"VALUE", 'k'},
	{"VALUES", 'E'},
	{"VARBINARY", 't'},
	{"VARBIT", 't'},
	{"VARCHAR", 't'},
	{"VARIADIC", 'k'},
	{"VARYING", 'k'},
	{"VERBOSE", 'k'},
	{"VERSION", 'k'},
	{"VIEW", 'k'},
	{"VIEWS", 'k'},
	{"VIRTUAL", 'k'},
	{"VOLATILE", 'k'},
	{"WAITFOR", 'T'},
	{"WHEN", 'E'},
	{"WHERE", 'E'},
	{"WHILE", 'T'},
	{"WHITESPACE", 'k'},
	{"WINDOW", 'k'},
	{"WITH", 'E'},
	{"WITHIN", 'k'},
	{"WITHOUT", 'k'},
	{"WORK", 'k'},
	{"WRAPPER", 'k'},
	{"WRITE", 'k'},
	{"WRITETEXT", 'T'},
	{"XML", 't'},
	{"XMLATTRIBUTES", 'k'},
	{"XMLCONCAT", 'k'},
	{"XMLELEMENT", 'k'},
	{"XMLEXISTS", 'k'},
	{"XMLFOREST", 'k'},
	{"XMLNAMESPACES", 'k'},
	{"XMLPARSE", 'k'},
	{"XMLPI", 'k'},
	{"XMLROOT", 'k'},
	{"XMLSERIALIZE", 'k'},
	{"XMLTABLE", 'k'},
	{"YEAR", 'k'},
	{"YES", 'k'},
	{"ZONE", 'k'},
}
